package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ObraLedger/construction_finance_app/internal/apperrors"
	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	portsrepo "github.com/ObraLedger/construction_finance_app/internal/core/ports/repositories"
	"github.com/ObraLedger/construction_finance_app/internal/models"
	"github.com/ObraLedger/construction_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkRepository struct {
	db *pgxpool.Pool
}

func newPgxWorkRepository(db *pgxpool.Pool) portsrepo.WorkRepositoryFacade {
	return &PgxWorkRepository{db: db}
}

// Ensure PgxWorkRepository implements portsrepo.WorkRepositoryFacade
var _ portsrepo.WorkRepositoryFacade = (*PgxWorkRepository)(nil)

func (r *PgxWorkRepository) FindWorkByIDForUpdate(ctx context.Context, tx pgx.Tx, workID string) (*domain.Work, error) {
	query := `
        SELECT work_id, name, status, created_at, created_by, last_updated_at, last_updated_by
        FROM works
        WHERE work_id = $1
        FOR UPDATE;
    `
	var m models.Work
	err := tx.QueryRow(ctx, query, workID).Scan(
		&m.WorkID,
		&m.Name,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find work by ID %s: %w", workID, err)
	}
	work := mapping.ToDomainWork(m)
	return &work, nil
}

func (r *PgxWorkRepository) UpdateWorkStatusInTx(ctx context.Context, tx pgx.Tx, workID string, status domain.WorkStatus, updatedBy string, now time.Time) error {
	query := `
        UPDATE works
        SET status = $2, last_updated_at = $3, last_updated_by = $4
        WHERE work_id = $1;
    `
	tag, err := tx.Exec(ctx, query, workID, string(status), now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status for work %s: %w", workID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: work %s", apperrors.ErrNotFound, workID)
	}
	return nil
}
