package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/textfix/internal/common"
	"github.com/dmitrijs2005/textfix/internal/dbx"
	"github.com/dmitrijs2005/textfix/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, ex *models.Exchange) (*models.Exchange, error) {
	query :=
		`INSERT INTO history (user_id, input_text, corrected_text)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, ex.UserID, ex.InputText, ex.CorrectedText).Scan(&ex.ID, &ex.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return ex, nil
}

// ListByUser returns the user's exchanges, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]models.Exchange, error) {
	query :=
		`SELECT id, user_id, input_text, corrected_text, created_at FROM history
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Exchange, 0)
	for rows.Next() {
		var ex models.Exchange
		if err := rows.Scan(&ex.ID, &ex.UserID, &ex.InputText, &ex.CorrectedText, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Exchange, error) {
	query :=
		`SELECT id, user_id, input_text, corrected_text, created_at FROM history
		 WHERE id = $1
		 `

	ex := &models.Exchange{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&ex.ID, &ex.UserID, &ex.InputText, &ex.CorrectedText, &ex.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return ex, nil
}

// Delete removes the exchange; a missing row is common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM history WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
