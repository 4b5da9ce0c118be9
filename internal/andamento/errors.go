package andamento

import "errors"

// Domain-specific errors for the andamento package.
var (
	ErrNotFound            = errors.New("andamento not found")
	ErrInvalidID           = errors.New("invalid andamento id")
	ErrProcessoRequired    = errors.New("processo_oab_id is required")
	ErrInvalidCNJ          = errors.New("invalid CNJ number")
	ErrLawsuitNotFound     = errors.New("lawsuit not found at provider")
	ErrProviderUnavailable = errors.New("legal-data provider is not configured")
	ErrNoMovements         = errors.New("no movements to ingest")
)
