// Package cache decorates an andamento repository with a Redis read-through cache
// of the raw rows. Only stored columns are cached; intimação evaluations are always
// recomputed by the caller.
package cache

import (
	"context"
	"fmt"

	"legal-office-management/internal/andamento/repository"
	"legal-office-management/pkg/log"
)

// Cache is the hash cache the decorator needs. *redis.Client satisfies it.
type Cache interface {
	Get(ctx context.Context, key, field string) (string, bool, error)
	Set(ctx context.Context, key, field, value string) error
	Delete(ctx context.Context, keys ...string) error
}

type implRepository struct {
	next  repository.Repository
	cache Cache
	l     log.Logger
}

// New wraps next. A nil cache returns next unchanged.
func New(next repository.Repository, cache Cache, l log.Logger) repository.Repository {
	if cache == nil {
		return next
	}
	return &implRepository{next: next, cache: cache, l: l}
}

func processoKey(processoOABID string) string {
	return "andamentos:processo:" + processoOABID
}

func pageField(opt repository.ListOptions) string {
	return fmt.Sprintf("%t:%d:%d", opt.OnlyUnread, opt.Limit, opt.Offset)
}
