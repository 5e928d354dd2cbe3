package services

import (
	"context"

	"github.com/dmitrijs2005/textfix/internal/client/client"
	"github.com/dmitrijs2005/textfix/internal/client/models"
	"github.com/dmitrijs2005/textfix/internal/client/session"
)

// HistoryService lists and deletes the user's past exchanges.
type HistoryService struct {
	client client.Client
	guard  *session.Guard
}

func NewHistoryService(c client.Client, guard *session.Guard) *HistoryService {
	return &HistoryService{client: c, guard: guard}
}

func (s *HistoryService) List(ctx context.Context) ([]models.Exchange, error) {
	var items []models.Exchange
	err := s.guard.Do(ctx, func(ctx context.Context, token string) (err error) {
		items, err = s.client.ListHistory(ctx, token)
		return err
	})
	return items, err
}

func (s *HistoryService) Delete(ctx context.Context, id int64) error {
	return s.guard.Do(ctx, func(ctx context.Context, token string) error {
		return s.client.DeleteHistory(ctx, token, id)
	})
}
