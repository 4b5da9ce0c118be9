package postgre

import (
	"fmt"
	"strings"

	repo "legal-office-management/internal/prazo/repository"
)

const prazoColumns = `id, project_id, processo_oab_id, andamento_id, title, description, date,
	calendar_event_id, created_by, created_at`

func buildFilter(opt repo.ListOptions) (string, []any) {
	var conditions []string
	var args []any

	add := func(cond string, v any) {
		args = append(args, v)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if opt.ProjectID != "" {
		add("project_id = $%d", opt.ProjectID)
	}
	if opt.ProcessoOABID != "" {
		add("processo_oab_id = $%d", opt.ProcessoOABID)
	}
	if opt.From != nil {
		add("date >= $%d", *opt.From)
	}
	if opt.To != nil {
		add("date <= $%d", *opt.To)
	}

	if len(conditions) == 0 {
		return "TRUE", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds WHERE + ORDER + LIMIT + OFFSET for List.
func buildListQuery(opt repo.ListOptions) (string, []any) {
	where, args := buildFilter(opt)
	parts := []string{"WHERE " + where, "ORDER BY date ASC, created_at ASC"}

	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		parts = append(parts, fmt.Sprintf("LIMIT $%d", len(args)))
	}
	if opt.Offset > 0 {
		args = append(args, opt.Offset)
		parts = append(parts, fmt.Sprintf("OFFSET $%d", len(args)))
	}

	return strings.Join(parts, " "), args
}
