package postgre

import (
	"fmt"

	"legal-office-management/internal/prazo/repository"
	"legal-office-management/pkg/log"
	pkgPostgre "legal-office-management/pkg/postgre"
)

type implRepository struct {
	db pkgPostgre.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for prazos.
func New(db pkgPostgre.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("prazo/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("prazo/repository/postgre.%s", method)
}
