package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/textfix/internal/common"
	"github.com/dmitrijs2005/textfix/internal/dbx"
	"github.com/dmitrijs2005/textfix/internal/logging"
	"github.com/dmitrijs2005/textfix/internal/server/corrector"
	"github.com/dmitrijs2005/textfix/internal/server/models"
	"github.com/dmitrijs2005/textfix/internal/server/repositories/repomanager"
)

type HistoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	corrector   corrector.Corrector
	logger      logging.Logger
}

func NewHistoryService(db *sql.DB, m repomanager.RepositoryManager, c corrector.Corrector, logger logging.Logger) *HistoryService {
	return &HistoryService{db: db, repomanager: m, corrector: c, logger: logger.With("module", "history_service")}
}

// Analyze corrects text and records the exchange for userID.
func (s *HistoryService) Analyze(ctx context.Context, userID int64, text string) (*models.Exchange, error) {
	if strings.TrimSpace(text) == "" {
		return nil, common.ErrorInputEmpty
	}

	corrected, err := s.corrector.Correct(ctx, text)
	if err != nil {
		s.logger.Error(ctx, "correction failed", "user_id", userID, "error", err)
		return nil, common.ErrorInternal
	}

	return s.repomanager.History(s.db).Create(ctx, &models.Exchange{
		UserID:        userID,
		InputText:     text,
		CorrectedText: corrected,
	})
}

// List returns the user's exchanges, newest first.
func (s *HistoryService) List(ctx context.Context, userID int64) ([]models.Exchange, error) {
	return s.repomanager.History(s.db).ListByUser(ctx, userID)
}

// Delete removes exchange id. Missing rows are common.ErrorNotFound and rows
// owned by someone else common.ErrorForbidden.
func (s *HistoryService) Delete(ctx context.Context, userID, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.History(tx)
		ex, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if ex.UserID != userID {
			return common.ErrorForbidden
		}
		return repo.Delete(ctx, id)
	})
}
