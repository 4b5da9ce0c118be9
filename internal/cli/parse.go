package cli

import (
	"fmt"
	"strings"

	intimacaoHTTP "legal-office-management/internal/intimacao/delivery/http"
	"legal-office-management/pkg/response"
)

// ParseCmd prints the parsed intimação as JSON, in the same shape as POST /api/v1/intimacoes/parse.
type ParseCmd struct {
	Hoje string `help:"Simulated today (dd/mm/yyyy, yyyy-mm-dd, amanhã, em 3 dias). Defaults to the real date." placeholder:"DATE"`
	Text string `arg:"" optional:"" help:"Intimação text. Use - or omit to read stdin."`
}

type parseOutput struct {
	Hoje      response.Date                `json:"hoje"`
	Intimacao intimacaoHTTP.EvaluationResp `json:"intimacao"`
}

func (cmd *ParseCmd) Run(ctx *Context) error {
	now, err := ctx.today(cmd.Hoje)
	if err != nil {
		return fmt.Errorf("invalid --hoje: %w", err)
	}

	text := cmd.Text
	if text == "" || text == "-" {
		raw, err := ctx.readInput("-")
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimRight(string(raw), "\r\n")
	}

	eval := ctx.Parser.Evaluate(&text, now)
	return ctx.printJSON(parseOutput{
		Hoje:      response.Date(now),
		Intimacao: intimacaoHTTP.NewEvaluationResp(eval),
	})
}
