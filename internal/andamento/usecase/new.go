package usecase

import (
	"time"

	"legal-office-management/internal/andamento"
	"legal-office-management/internal/andamento/repository"
	"legal-office-management/internal/intimacao"
	"legal-office-management/pkg/log"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// implUseCase is the private implementation of andamento.UseCase.
type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	parser   intimacao.Parser
	provider andamento.Provider
	clock    func() time.Time
}

// New creates a new andamento UseCase. provider may be nil when no
// judicial-data provider is configured; Import then returns ErrProviderUnavailable.
func New(l log.Logger, repo repository.Repository, parser intimacao.Parser, provider andamento.Provider) andamento.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		parser:   parser,
		provider: provider,
		clock:    time.Now,
	}
}
