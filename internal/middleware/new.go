package middleware

import (
	"strings"

	"legal-office-management/pkg/log"
)

type apiKey struct {
	name   string
	secret string
}

type Middleware struct {
	l    log.Logger
	keys []apiKey
}

// New builds the middleware set. Each entry of apiKeys is either "name:secret"
// or a bare secret, which is reported as the "api" caller.
// With no keys configured Auth lets every request through.
func New(l log.Logger, apiKeys []string) Middleware {
	keys := make([]apiKey, 0, len(apiKeys))
	for _, entry := range apiKeys {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, secret, ok := strings.Cut(entry, ":")
		if !ok {
			name, secret = "api", entry
		}
		keys = append(keys, apiKey{name: name, secret: secret})
	}
	return Middleware{l: l, keys: keys}
}
