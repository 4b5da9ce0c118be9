package repository

import "time"

// CreateOptions holds the columns of a new deadline.
type CreateOptions struct {
	ProjectID     string
	ProcessoOABID *string
	AndamentoID   *string
	Title         string
	Description   string
	Date          time.Time // civil date, UTC midnight
	CreatedBy     string
}

// ListOptions filters deadlines. Zero values are ignored.
type ListOptions struct {
	ProjectID     string
	ProcessoOABID string
	From          *time.Time
	To            *time.Time
	Limit         int
	Offset        int
}
