package history

import (
	"context"

	"github.com/dmitrijs2005/textfix/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, ex *models.Exchange) (*models.Exchange, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Exchange, error)
	Get(ctx context.Context, id int64) (*models.Exchange, error)
	Delete(ctx context.Context, id int64) error
}
