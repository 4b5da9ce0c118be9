package webhook

import (
	"context"

	"legal-office-management/internal/andamento"
	"legal-office-management/internal/model"
)

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification
	AllowedIPs      []string // IP or CIDR allow-list (optional)
	RateLimitPerMin int      // Max requests per minute per source IP
}

// Ingester stores pushed movements. andamento.UseCase satisfies it.
type Ingester interface {
	Ingest(ctx context.Context, sc model.Scope, input andamento.IngestInput) (andamento.IngestOutput, error)
}
