package services

import (
	"context"

	"github.com/dmitrijs2005/textfix/internal/client/client"
	"github.com/dmitrijs2005/textfix/internal/client/models"
	"github.com/dmitrijs2005/textfix/internal/client/session"
	"github.com/dmitrijs2005/textfix/internal/logging"
)

// ChatService submits text for correction on behalf of the signed-in user.
type ChatService struct {
	client client.Client
	guard  *session.Guard
	logger logging.Logger
}

func NewChatService(c client.Client, guard *session.Guard, logger logging.Logger) *ChatService {
	return &ChatService{client: c, guard: guard, logger: logger.With("module", "chat_service")}
}

// Analyze sends text with the user id decoded from the stored credential.
// An undecodable credential sends id 0, which the server resolves from
// the token itself.
func (s *ChatService) Analyze(ctx context.Context, text string) (*models.Exchange, error) {
	var ex *models.Exchange
	err := s.guard.Do(ctx, func(ctx context.Context, token string) error {
		userID, _, err := session.Identity(token)
		if err != nil {
			s.logger.Warn(ctx, "credential carries no user id", "error", err)
		}

		ex, err = s.client.Analyze(ctx, token, text, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ex, nil
}
