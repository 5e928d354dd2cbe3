package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/textfix/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/textfix/internal/common"
)

// Store persists the credential token under common.TokenMetadataKey.
type Store struct {
	repo metadata.Repository
}

func NewStore(repo metadata.Repository) *Store {
	return &Store{repo: repo}
}

// Token returns the stored token or "" when none is stored.
func (s *Store) Token(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, common.TokenMetadataKey)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return string(v), nil
}

func (s *Store) Save(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := s.repo.Set(ctx, common.TokenMetadataKey, []byte(token)); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.TokenMetadataKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
