package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"legal-office-management/internal/andamento"
	andamentoKafka "legal-office-management/internal/andamento/delivery/kafka"
	"legal-office-management/internal/model"
	pkgKafka "legal-office-management/pkg/kafka"
	"legal-office-management/pkg/log"
)

type mockUseCase struct {
	andamento.UseCase
	ingested []andamento.IngestInput
	err      error
}

func (m *mockUseCase) Ingest(_ context.Context, _ model.Scope, in andamento.IngestInput) (andamento.IngestOutput, error) {
	if in.ProcessoOABID == "" {
		return andamento.IngestOutput{}, andamento.ErrProcessoRequired
	}
	if m.err != nil {
		return andamento.IngestOutput{}, m.err
	}
	m.ingested = append(m.ingested, in)
	return andamento.IngestOutput{Received: len(in.Movements), Inserted: len(in.Movements)}, nil
}

func encode(t *testing.T, b model.MovementBatch) pkgKafka.Message {
	t.Helper()
	v, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	return pkgKafka.Message{Key: b.NumeroCNJ, Value: v}
}

func TestHandle(t *testing.T) {
	uc := &mockUseCase{}
	handle := andamentoKafka.New(log.NewNop(), uc)

	msgs := []pkgKafka.Message{
		encode(t, model.MovementBatch{ProcessoOABID: "p-1", NumeroCNJ: "cnj-1", Movements: []model.Movement{{ExternalID: "m1", Texto: "x"}}}),
		{Key: "bad", Value: []byte("{not json")},
		encode(t, model.MovementBatch{NumeroCNJ: "cnj-orphan", Movements: []model.Movement{{ExternalID: "m2"}}}),
		encode(t, model.MovementBatch{Source: model.SourceImport, ProcessoOABID: "p-2", NumeroCNJ: "cnj-2", Movements: []model.Movement{{ExternalID: "m3"}}}),
	}

	if err := handle(context.Background(), msgs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(uc.ingested) != 2 {
		t.Fatalf("ingested %d batches, want 2", len(uc.ingested))
	}
	if uc.ingested[0].Source != model.SourceLegalData {
		t.Errorf("default source = %s, want legaldata", uc.ingested[0].Source)
	}
	if uc.ingested[1].Source != model.SourceImport {
		t.Errorf("source = %s, want import", uc.ingested[1].Source)
	}
}

func TestHandle_StoreFailureRedelivers(t *testing.T) {
	storeErr := errors.New("db down")
	handle := andamentoKafka.New(log.NewNop(), &mockUseCase{err: storeErr})

	err := handle(context.Background(), []pkgKafka.Message{
		encode(t, model.MovementBatch{ProcessoOABID: "p-1", Movements: []model.Movement{{ExternalID: "m1"}}}),
	})
	if !errors.Is(err, storeErr) {
		t.Errorf("err = %v, want wrapped store error", err)
	}
}
