package prazo

import "errors"

// Domain-specific errors for the prazo package.
var (
	ErrNotFound          = errors.New("prazo not found")
	ErrInvalidID         = errors.New("invalid prazo id")
	ErrProjectRequired   = errors.New("project_id is required")
	ErrTitleRequired     = errors.New("title is required")
	ErrDateRequired      = errors.New("date is required")
	ErrFilterRequired    = errors.New("project_id or processo_oab_id is required")
	ErrInvalidRange      = errors.New("from must not be after to")
	ErrAndamentoNotFound = errors.New("andamento not found")
	ErrNoDeadline        = errors.New("intimação has no final date or prazo to derive a deadline from")
	ErrIntimacaoClosed   = errors.New("intimação is already closed")
)
