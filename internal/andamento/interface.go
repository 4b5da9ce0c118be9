package andamento

import (
	"context"

	"legal-office-management/internal/model"
	"legal-office-management/pkg/legaldata"
)

// UseCase defines the business logic interface for docket entries.
type UseCase interface {
	// List returns the andamentos of a process, newest first, each evaluated as an intimação.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Detail returns one andamento with its evaluation.
	Detail(ctx context.Context, sc model.Scope, input DetailInput) (Item, error)

	// MarkRead flips the lida flag. It is the only mutation an andamento accepts.
	MarkRead(ctx context.Context, sc model.Scope, input MarkReadInput) (model.Andamento, error)

	// CountUrgent counts unread, open intimações of a process that are critica or alta.
	CountUrgent(ctx context.Context, sc model.Scope, input CountUrgentInput) (int, error)

	// Import pulls the lawsuit movements from the provider and stores the new ones.
	Import(ctx context.Context, sc model.Scope, input ImportInput) (ImportOutput, error)

	// Ingest stores movements pushed by the provider. Already known movements are skipped.
	Ingest(ctx context.Context, sc model.Scope, input IngestInput) (IngestOutput, error)
}

// Provider fetches lawsuit movements from the judicial-data provider.
type Provider interface {
	GetMovements(ctx context.Context, cnj string) ([]legaldata.Movement, error)
}
