package usecase

import (
	"time"

	"legal-office-management/internal/prazo"
	"legal-office-management/internal/prazo/repository"
	"legal-office-management/pkg/datemath"
	pkgKafka "legal-office-management/pkg/kafka"
	pkgLog "legal-office-management/pkg/log"
)

const (
	defaultLimit = 50
	maxLimit     = 200

	eventPrazoCreated = "prazo.created"
)

// Config carries the optional collaborators. A nil Calendar or Publisher
// disables agenda sync or event publishing.
type Config struct {
	Calendar        prazo.Calendar
	CalendarID      string
	ReminderMinutes []int64
	Publisher       pkgKafka.Publisher
	Topic           string
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	andamentos prazo.Andamentos
	dateMath   *datemath.Parser
	cfg        Config
	clock      func() time.Time
}

// New creates a new prazo UseCase.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	andamentos prazo.Andamentos,
	dateMath *datemath.Parser,
	cfg Config,
) prazo.UseCase {
	if cfg.Topic == "" {
		cfg.Topic = eventPrazoCreated
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		andamentos: andamentos,
		dateMath:   dateMath,
		cfg:        cfg,
		clock:      time.Now,
	}
}
