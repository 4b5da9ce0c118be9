package cli

import (
	"encoding/json"
	"fmt"

	"legal-office-management/internal/model"
)

// CountCmd counts the urgent intimações of an exported andamento list.
type CountCmd struct {
	Hoje string `help:"Simulated today (dd/mm/yyyy, yyyy-mm-dd, amanhã, em 3 dias). Defaults to the real date." placeholder:"DATE"`
	File string `arg:"" help:"JSON array of andamentos. Use - to read stdin." type:"path"`
}

type countOutput struct {
	Total    int `json:"total"`
	Urgentes int `json:"urgentes"`
}

func (cmd *CountCmd) Run(ctx *Context) error {
	now, err := ctx.today(cmd.Hoje)
	if err != nil {
		return fmt.Errorf("invalid --hoje: %w", err)
	}

	raw, err := ctx.readInput(cmd.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", cmd.File, err)
	}

	var andamentos []model.Andamento
	if err := json.Unmarshal(raw, &andamentos); err != nil {
		return fmt.Errorf("decode andamentos: %w", err)
	}

	return ctx.printJSON(countOutput{
		Total:    len(andamentos),
		Urgentes: ctx.Parser.CountUrgentes(andamentos, now),
	})
}
