package model

// Scope carries the caller identity through use cases.
type Scope struct {
	UserID string
	Source string // "api", "webhook", "consumer", "cli"
}
