package corrector

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/textfix/internal/logging"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = "You are a proofreader. Correct the spelling, grammar and punctuation of the user's text. " +
	"Keep its meaning, language and formatting. Reply with the corrected text only."

var ErrEmptyCompletion = errors.New("model returned no completion")

type OpenAI struct {
	client openai.Client
	model  string
	logger logging.Logger
}

// NewOpenAI builds the corrector. An empty apiKey or baseURL falls back
// to the library defaults (OPENAI_API_KEY and the public endpoint).
func NewOpenAI(apiKey, baseURL, model string, logger logging.Logger) *OpenAI {
	var opts []option.RequestOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAI{
		client: openai.NewClient(opts...),
		model:  model,
		logger: logger.With("module", "openai_corrector"),
	}
}

func (o *OpenAI) Correct(ctx context.Context, text string) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
		openai.UserMessage(text),
	}

	chatOpts := openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       o.model,
		Temperature: openai.Float(0),
	}

	res, err := o.client.Chat.Completions.New(ctx, chatOpts)
	if err != nil {
		o.logger.Error(ctx, "chat completions failed", "error", err)
		return "", fmt.Errorf("openai correction failed: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return strings.TrimSpace(res.Choices[0].Message.Content), nil
}
