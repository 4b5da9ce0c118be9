package postgre

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"legal-office-management/internal/model"
	repo "legal-office-management/internal/andamento/repository"
	pkgPostgre "legal-office-management/pkg/postgre"
)

func scanAndamento(row pgx.Row) (model.Andamento, error) {
	var a model.Andamento
	var raw []byte
	err := row.Scan(
		&a.ID, &a.ProcessoOABID, &a.ExternalID, &a.DataMovimentacao, &a.Tipo,
		&a.Descricao, &a.Lida, &raw, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return model.Andamento{}, err
	}
	if len(raw) > 0 {
		a.DadosCompletos = raw
	}
	return a, nil
}

// ListByProcesso returns a page of andamentos of one process and the total count.
func (r *implRepository) ListByProcesso(ctx context.Context, opt repo.ListOptions) ([]model.Andamento, int, error) {
	// 1. Count total (without pagination)
	where, countArgs := buildFilter(opt)
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM andamentos WHERE "+where, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListByProcesso"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM andamentos %s", andamentoColumns, mods)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListByProcesso"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	items := make([]model.Andamento, 0)
	for rows.Next() {
		a, err := scanAndamento(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListByProcesso"), err)
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListByProcesso"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}

// GetOne retrieves an andamento by id. Not found → zero value, no error.
func (r *implRepository) GetOne(ctx context.Context, id string) (model.Andamento, error) {
	query := fmt.Sprintf("SELECT %s FROM andamentos WHERE id = $1", andamentoColumns)

	a, err := scanAndamento(r.db.QueryRow(ctx, query, id))
	if pkgPostgre.IsNoRows(err) {
		return model.Andamento{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.Andamento{}, repo.ErrFailedToGet
	}
	return a, nil
}

// UpdateLida sets the read flag and returns the updated row.
func (r *implRepository) UpdateLida(ctx context.Context, opt repo.UpdateLidaOptions) (model.Andamento, error) {
	query := fmt.Sprintf(`
		UPDATE andamentos SET lida = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING %s`, andamentoColumns)

	a, err := scanAndamento(r.db.QueryRow(ctx, query, opt.Lida, opt.ID))
	if pkgPostgre.IsNoRows(err) {
		return model.Andamento{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateLida"), err)
		return model.Andamento{}, repo.ErrFailedToUpdate
	}
	return a, nil
}

// UpsertMany inserts the movements in one batch and returns how many were new.
func (r *implRepository) UpsertMany(ctx context.Context, opts []repo.UpsertOptions) (int, error) {
	if len(opts) == 0 {
		return 0, nil
	}

	const query = `
		INSERT INTO andamentos (id, processo_oab_id, external_id, data_movimentacao, tipo, descricao, dados_completos)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
		ON CONFLICT (processo_oab_id, external_id) DO NOTHING`

	batch := &pgx.Batch{}
	for _, opt := range opts {
		var raw any
		if len(opt.DadosCompletos) > 0 {
			raw = string(opt.DadosCompletos)
		}
		batch.Queue(query, uuid.NewString(), opt.ProcessoOABID, opt.ExternalID,
			opt.DataMovimentacao, opt.Tipo, opt.Descricao, raw)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for i := range opts {
		tag, err := results.Exec()
		if err != nil {
			r.l.Errorf(ctx, "%s item %d: %v", r.dsn("UpsertMany"), i, err)
			return inserted, repo.ErrFailedToInsert
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
