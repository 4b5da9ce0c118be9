package postgre

import (
	"fmt"

	"legal-office-management/internal/andamento/repository"
	"legal-office-management/pkg/log"
	pkgPostgre "legal-office-management/pkg/postgre"
)

type implRepository struct {
	db pkgPostgre.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for andamentos.
func New(db pkgPostgre.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("andamento/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("andamento/repository/postgre.%s", method)
}
