// Package cli holds the kong commands of the intimacao binary.
package cli

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"legal-office-management/internal/intimacao"
	"legal-office-management/pkg/datemath"
)

// Context is passed to every command's Run.
type Context struct {
	Parser intimacao.Parser
	Dates  *datemath.Parser
	Now    func() time.Time
	Stdin  io.Reader
	Stdout io.Writer
}

// NewContext builds a Context for timezone reading stdin and writing stdout.
func NewContext(timezone string) (*Context, error) {
	dates, err := datemath.NewParser(timezone)
	if err != nil {
		return nil, err
	}
	return &Context{
		Parser: intimacao.New(dates),
		Dates:  dates,
		Now:    time.Now,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}, nil
}

// today resolves a --hoje value to the simulated start of day.
func (c *Context) today(hoje string) (time.Time, error) {
	return c.Dates.Parse(strings.TrimSpace(hoje), c.Now())
}

// readInput returns the file or stdin contents; "-" and "" mean stdin.
func (c *Context) readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(c.Stdin)
	}
	return os.ReadFile(path)
}

func (c *Context) printJSON(v any) error {
	enc := json.NewEncoder(c.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
