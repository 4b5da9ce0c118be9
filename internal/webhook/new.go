package webhook

import (
	pkgKafka "legal-office-management/pkg/kafka"
	pkgLog "legal-office-management/pkg/log"
)

type Handler struct {
	ingester  Ingester
	publisher pkgKafka.Publisher
	topic     string
	security  *SecurityValidator
	l         pkgLog.Logger
}

// NewHandler builds the legal-data webhook handler. With a non-nil publisher
// accepted batches go to topic; otherwise they are ingested in the background.
func NewHandler(
	ingester Ingester,
	publisher pkgKafka.Publisher,
	topic string,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		ingester:  ingester,
		publisher: publisher,
		topic:     topic,
		security:  NewSecurityValidator(securityConfig),
		l:         l,
	}
}
