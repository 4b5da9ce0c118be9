package postgre

import (
	"fmt"
	"strings"

	repo "legal-office-management/internal/andamento/repository"
)

const andamentoColumns = `id, processo_oab_id, COALESCE(external_id, ''), data_movimentacao, tipo,
	descricao, lida, dados_completos, created_at, updated_at`

// buildFilter builds the WHERE clause + args shared by the count and page queries.
func buildFilter(opt repo.ListOptions) (string, []any) {
	conditions := []string{"processo_oab_id = $1"}
	args := []any{opt.ProcessoOABID}

	if opt.OnlyUnread {
		conditions = append(conditions, "lida = FALSE")
	}

	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListByProcesso.
func buildListQuery(opt repo.ListOptions) (string, []any) {
	where, args := buildFilter(opt)
	parts := []string{"WHERE " + where, "ORDER BY data_movimentacao DESC, created_at DESC"}
	idx := len(args) + 1

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
