package llm

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/apperror"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// completeAttempts is how many times an empty completion is retried before
// giving up. No backoff; empty bodies from the upstream are transient.
const completeAttempts = 3

var ErrEmptyCompletion = apperror.New(
	apperror.CodeServiceUnavailable,
	"Language model returned an empty completion",
	http.StatusServiceUnavailable,
)

// TextCompleter is the only surface the rest of the app sees.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Client struct {
	model     llms.Model
	modelName string
	logger    *zap.Logger
}

// NewClient builds an openai-compatible client from the environment.
// OPENAI_BASE_URL allows pointing at a local or proxy deployment.
func NewClient(logger ...*zap.Logger) (*Client, error) {
	l := zap.L().Named("llm.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("llm.client")
	}

	modelName := os.Getenv("OPENAI_MODEL")
	if modelName == "" {
		modelName = "gpt-4o-mini"
	}

	opts := []openai.Option{
		openai.WithToken(os.Getenv("OPENAI_API_KEY")),
		openai.WithModel(modelName),
	}
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	model, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}

	return &Client{model: model, modelName: modelName, logger: l}, nil
}

// NewClientWithModel is the injection point for tests.
func NewClientWithModel(model llms.Model, modelName string, logger ...*zap.Logger) *Client {
	l := zap.L().Named("llm.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("llm.client")
	}
	return &Client{model: model, modelName: modelName, logger: l}
}

func (c *Client) ModelName() string {
	return c.modelName
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= completeAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		start := time.Now()
		out, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt)
		if err != nil {
			lastErr = err
			c.logger.Warn("completion attempt failed",
				zap.Int("attempt", attempt),
				zap.Duration("took", time.Since(start)),
				zap.Error(err),
			)
			continue
		}

		out = strings.TrimSpace(out)
		if out == "" {
			lastErr = ErrEmptyCompletion
			c.logger.Warn("completion came back empty",
				zap.Int("attempt", attempt),
				zap.Duration("took", time.Since(start)),
			)
			continue
		}

		return out, nil
	}

	return "", lastErr
}
