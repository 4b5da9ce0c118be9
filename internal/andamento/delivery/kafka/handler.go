// Package kafka consumes provider movement batches from the andamentos.sync topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"legal-office-management/internal/andamento"
	"legal-office-management/internal/model"
	pkgKafka "legal-office-management/pkg/kafka"
	"legal-office-management/pkg/log"
)

type handler struct {
	l  log.Logger
	uc andamento.UseCase
}

// New returns the batch handler that feeds andamento.UseCase.Ingest.
func New(l log.Logger, uc andamento.UseCase) pkgKafka.Handler {
	h := &handler{l: l, uc: uc}
	return h.handle
}

// handle ingests every batch in order. Undecodable or incomplete messages are
// dropped; a store failure aborts so the whole batch is redelivered.
func (h *handler) handle(ctx context.Context, messages []pkgKafka.Message) error {
	for _, msg := range messages {
		var batch model.MovementBatch
		if err := json.Unmarshal(msg.Value, &batch); err != nil {
			h.l.Warnf(ctx, "andamento/delivery/kafka: dropping undecodable message key=%s: %v", msg.Key, err)
			continue
		}

		source := batch.Source
		if source == "" {
			source = model.SourceLegalData
		}

		out, err := h.uc.Ingest(ctx, model.Scope{UserID: "consumer", Source: "consumer"}, andamento.IngestInput{
			ProcessoOABID: batch.ProcessoOABID,
			Source:        source,
			Movements:     batch.Movements,
		})
		switch {
		case errors.Is(err, andamento.ErrProcessoRequired), errors.Is(err, andamento.ErrNoMovements):
			h.l.Warnf(ctx, "andamento/delivery/kafka: dropping batch key=%s cnj=%s: %v", msg.Key, batch.NumeroCNJ, err)
		case err != nil:
			return fmt.Errorf("ingest key=%s: %w", msg.Key, err)
		default:
			h.l.Debugf(ctx, "andamento/delivery/kafka: key=%s received=%d inserted=%d", msg.Key, out.Received, out.Inserted)
		}
	}
	return nil
}
