package cache

import (
	"context"
	"encoding/json"

	"legal-office-management/internal/andamento/repository"
	"legal-office-management/internal/model"
)

type cachedPage struct {
	Items []model.Andamento `json:"items"`
	Total int               `json:"total"`
}

// ListByProcesso serves a page from the process hash, falling back to the store on a miss.
// Cache errors are logged and never fail the call.
func (r *implRepository) ListByProcesso(ctx context.Context, opt repository.ListOptions) ([]model.Andamento, int, error) {
	key, field := processoKey(opt.ProcessoOABID), pageField(opt)

	raw, ok, err := r.cache.Get(ctx, key, field)
	if err != nil {
		r.l.Warnf(ctx, "andamento/repository/cache.ListByProcesso: get %s: %v", key, err)
	}
	if ok {
		var page cachedPage
		if err := json.Unmarshal([]byte(raw), &page); err == nil {
			return page.Items, page.Total, nil
		}
		r.l.Warnf(ctx, "andamento/repository/cache.ListByProcesso: corrupt entry %s/%s", key, field)
	}

	items, total, err := r.next.ListByProcesso(ctx, opt)
	if err != nil {
		return nil, 0, err
	}

	if b, err := json.Marshal(cachedPage{Items: items, Total: total}); err == nil {
		if err := r.cache.Set(ctx, key, field, string(b)); err != nil {
			r.l.Warnf(ctx, "andamento/repository/cache.ListByProcesso: set %s: %v", key, err)
		}
	}
	return items, total, nil
}

// GetOne is not cached.
func (r *implRepository) GetOne(ctx context.Context, id string) (model.Andamento, error) {
	return r.next.GetOne(ctx, id)
}

// UpdateLida writes through and drops the cached pages of the entry's process.
func (r *implRepository) UpdateLida(ctx context.Context, opt repository.UpdateLidaOptions) (model.Andamento, error) {
	a, err := r.next.UpdateLida(ctx, opt)
	if err != nil {
		return a, err
	}
	if a.ProcessoOABID != "" {
		r.invalidate(ctx, a.ProcessoOABID)
	}
	return a, nil
}

// UpsertMany writes through and drops the cached pages of every touched process.
func (r *implRepository) UpsertMany(ctx context.Context, opts []repository.UpsertOptions) (int, error) {
	n, err := r.next.UpsertMany(ctx, opts)
	if n == 0 && err != nil {
		return n, err
	}

	seen := make(map[string]struct{}, 1)
	for _, opt := range opts {
		if _, ok := seen[opt.ProcessoOABID]; ok {
			continue
		}
		seen[opt.ProcessoOABID] = struct{}{}
		r.invalidate(ctx, opt.ProcessoOABID)
	}
	return n, err
}

func (r *implRepository) invalidate(ctx context.Context, processoOABID string) {
	if err := r.cache.Delete(ctx, processoKey(processoOABID)); err != nil {
		r.l.Warnf(ctx, "andamento/repository/cache: invalidate %s: %v", processoOABID, err)
	}
}
