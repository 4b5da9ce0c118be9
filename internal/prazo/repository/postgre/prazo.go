package postgre

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"legal-office-management/internal/model"
	repo "legal-office-management/internal/prazo/repository"
	pkgPostgre "legal-office-management/pkg/postgre"
)

func scanPrazo(row pgx.Row) (model.Prazo, error) {
	var p model.Prazo
	err := row.Scan(
		&p.ID, &p.ProjectID, &p.ProcessoOABID, &p.AndamentoID, &p.Title, &p.Description, &p.Date,
		&p.CalendarEventID, &p.CreatedBy, &p.CreatedAt,
	)
	return p, err
}

// Create inserts a new deadline and returns the stored row.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.Prazo, error) {
	query := fmt.Sprintf(`
		INSERT INTO prazos (id, project_id, processo_oab_id, andamento_id, title, description, date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s`, prazoColumns)

	p, err := scanPrazo(r.db.QueryRow(ctx, query,
		uuid.NewString(), opt.ProjectID, opt.ProcessoOABID, opt.AndamentoID,
		opt.Title, opt.Description, opt.Date, opt.CreatedBy,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.Prazo{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// GetOne retrieves a deadline by id. Not found → zero value, no error.
func (r *implRepository) GetOne(ctx context.Context, id string) (model.Prazo, error) {
	query := fmt.Sprintf("SELECT %s FROM prazos WHERE id = $1", prazoColumns)

	p, err := scanPrazo(r.db.QueryRow(ctx, query, id))
	if pkgPostgre.IsNoRows(err) {
		return model.Prazo{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.Prazo{}, repo.ErrFailedToGet
	}
	return p, nil
}

// List returns a page of deadlines ordered by date and the total count.
func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]model.Prazo, int, error) {
	where, countArgs := buildFilter(opt)
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM prazos WHERE "+where, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("List"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := buildListQuery(opt)
	rows, err := r.db.Query(ctx, fmt.Sprintf("SELECT %s FROM prazos %s", prazoColumns, mods), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	prazos := make([]model.Prazo, 0)
	for rows.Next() {
		p, err := scanPrazo(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("List"), err)
			return nil, 0, repo.ErrFailedToList
		}
		prazos = append(prazos, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("List"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return prazos, total, nil
}

// SetCalendarEventID records the agenda event mirrored from the deadline.
func (r *implRepository) SetCalendarEventID(ctx context.Context, id, eventID string) error {
	if _, err := r.db.Exec(ctx, "UPDATE prazos SET calendar_event_id = $1 WHERE id = $2", eventID, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetCalendarEventID"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// Delete removes a deadline. Deleting a missing id is not an error.
func (r *implRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM prazos WHERE id = $1", id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
