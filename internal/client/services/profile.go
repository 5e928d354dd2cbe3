package services

import (
	"context"

	"github.com/dmitrijs2005/textfix/internal/client/client"
	"github.com/dmitrijs2005/textfix/internal/client/models"
	"github.com/dmitrijs2005/textfix/internal/client/session"
)

type ProfileService struct {
	client client.Client
	guard  *session.Guard
}

func NewProfileService(c client.Client, guard *session.Guard) *ProfileService {
	return &ProfileService{client: c, guard: guard}
}

func (s *ProfileService) Get(ctx context.Context) (*models.Profile, error) {
	var p *models.Profile
	err := s.guard.Do(ctx, func(ctx context.Context, token string) (err error) {
		p, err = s.client.GetProfile(ctx, token)
		return err
	})
	return p, err
}
