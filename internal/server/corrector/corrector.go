// Package corrector turns user text into its corrected form. Rules is a
// self-contained dictionary and capitalisation pass; OpenAI delegates to a
// chat completion model.
package corrector

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/textfix/internal/logging"
	"github.com/dmitrijs2005/textfix/internal/server/config"
)

type Corrector interface {
	Correct(ctx context.Context, text string) (string, error)
}

// New builds the corrector selected by cfg.Corrector.
func New(cfg *config.Config, logger logging.Logger) (Corrector, error) {
	switch cfg.Corrector {
	case config.CorrectorRules:
		return NewRules(), nil
	case config.CorrectorOpenAI:
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, logger), nil
	}
	return nil, fmt.Errorf("unknown corrector %q", cfg.Corrector)
}
