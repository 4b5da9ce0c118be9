package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"legal-office-management/internal/andamento/repository"
	"legal-office-management/internal/andamento/repository/cache"
	"legal-office-management/internal/model"
	pkgLog "legal-office-management/pkg/log"
)

type fakeCache struct {
	data    map[string]map[string]string
	deleted []string
	getErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]map[string]string{}}
}

func (c *fakeCache) Get(_ context.Context, key, field string) (string, bool, error) {
	if c.getErr != nil {
		return "", false, c.getErr
	}
	v, ok := c.data[key][field]
	return v, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key, field, value string) error {
	if c.data[key] == nil {
		c.data[key] = map[string]string{}
	}
	c.data[key][field] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

type mockRepo struct {
	items     []model.Andamento
	listCalls int
	updated   model.Andamento
	inserted  int
	err       error
}

func (m *mockRepo) ListByProcesso(_ context.Context, _ repository.ListOptions) ([]model.Andamento, int, error) {
	m.listCalls++
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.items, len(m.items), nil
}

func (m *mockRepo) GetOne(_ context.Context, _ string) (model.Andamento, error) {
	return model.Andamento{}, nil
}

func (m *mockRepo) UpdateLida(_ context.Context, _ repository.UpdateLidaOptions) (model.Andamento, error) {
	return m.updated, m.err
}

func (m *mockRepo) UpsertMany(_ context.Context, _ []repository.UpsertOptions) (int, error) {
	return m.inserted, m.err
}

func sample() []model.Andamento {
	desc := "Data Final: 15/03/2024"
	return []model.Andamento{{
		ID:               "a-1",
		ProcessoOABID:    "p-1",
		ExternalID:       "mov-1",
		DataMovimentacao: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Tipo:             "Intimação",
		Descricao:        &desc,
		CreatedAt:        time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}}
}

func TestListByProcesso_ReadThrough(t *testing.T) {
	ctx := context.Background()
	next := &mockRepo{items: sample()}
	c := newFakeCache()
	repo := cache.New(next, c, pkgLog.NewNop())
	opt := repository.ListOptions{ProcessoOABID: "p-1", Limit: 50}

	first, total, err := repo.ListByProcesso(ctx, opt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := repo.ListByProcesso(ctx, opt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if next.listCalls != 1 {
		t.Errorf("store calls = %d, want 1", next.listCalls)
	}
	if total != 1 {
		t.Errorf("total = %d, want 1", total)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached page mismatch (-first +second):\n%s", diff)
	}

	// A different page of the same process is a separate field.
	if _, _, err := repo.ListByProcesso(ctx, repository.ListOptions{ProcessoOABID: "p-1", OnlyUnread: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.listCalls != 2 {
		t.Errorf("store calls = %d, want 2", next.listCalls)
	}
}

func TestListByProcesso_CacheErrorFallsBack(t *testing.T) {
	next := &mockRepo{items: sample()}
	c := newFakeCache()
	c.getErr = errors.New("connection refused")
	repo := cache.New(next, c, pkgLog.NewNop())

	items, _, err := repo.ListByProcesso(context.Background(), repository.ListOptions{ProcessoOABID: "p-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("len(items) = %d, want 1", len(items))
	}
}

func TestListByProcesso_StoreErrorNotCached(t *testing.T) {
	next := &mockRepo{err: repository.ErrFailedToList}
	c := newFakeCache()
	repo := cache.New(next, c, pkgLog.NewNop())

	if _, _, err := repo.ListByProcesso(context.Background(), repository.ListOptions{ProcessoOABID: "p-1"}); !errors.Is(err, repository.ErrFailedToList) {
		t.Fatalf("err = %v, want ErrFailedToList", err)
	}
	if len(c.data) != 0 {
		t.Errorf("expected nothing cached, got %v", c.data)
	}
}

func TestUpdateLida_Invalidates(t *testing.T) {
	ctx := context.Background()
	next := &mockRepo{items: sample(), updated: model.Andamento{ID: "a-1", ProcessoOABID: "p-1", Lida: true}}
	c := newFakeCache()
	repo := cache.New(next, c, pkgLog.NewNop())

	_, _, _ = repo.ListByProcesso(ctx, repository.ListOptions{ProcessoOABID: "p-1"})
	if _, err := repo.UpdateLida(ctx, repository.UpdateLidaOptions{ID: "a-1", Lida: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, _, _ = repo.ListByProcesso(ctx, repository.ListOptions{ProcessoOABID: "p-1"})

	if next.listCalls != 2 {
		t.Errorf("store calls = %d, want 2 after invalidation", next.listCalls)
	}
	if diff := cmp.Diff([]string{"andamentos:processo:p-1"}, c.deleted); diff != "" {
		t.Errorf("deleted keys mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateLida_MissingDoesNotInvalidate(t *testing.T) {
	c := newFakeCache()
	repo := cache.New(&mockRepo{}, c, pkgLog.NewNop())

	if _, err := repo.UpdateLida(context.Background(), repository.UpdateLidaOptions{ID: "nope"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.deleted) != 0 {
		t.Errorf("unexpected invalidation: %v", c.deleted)
	}
}

func TestUpsertMany_InvalidatesEachProcessOnce(t *testing.T) {
	c := newFakeCache()
	repo := cache.New(&mockRepo{inserted: 3}, c, pkgLog.NewNop())

	n, err := repo.UpsertMany(context.Background(), []repository.UpsertOptions{
		{ProcessoOABID: "p-1", ExternalID: "1"},
		{ProcessoOABID: "p-1", ExternalID: "2"},
		{ProcessoOABID: "p-2", ExternalID: "3"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("inserted = %d, want 3", n)
	}
	want := []string{"andamentos:processo:p-1", "andamentos:processo:p-2"}
	if diff := cmp.Diff(want, c.deleted); diff != "" {
		t.Errorf("deleted keys mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_NilCache(t *testing.T) {
	next := &mockRepo{}
	if got := cache.New(next, nil, pkgLog.NewNop()); got != repository.Repository(next) {
		t.Errorf("expected the store repository to be returned unchanged")
	}
}
