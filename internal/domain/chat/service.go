package chat

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/hellosamyak/AgriPulse-backend/pkg/errors"
)

// GenerativeClient submits a prompt to the external text-generation
// collaborator and returns its raw text.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, model, prompt string) (string, error)
}

// Config wires runtime dependencies for the chatbot domain.
type Config struct {
	Model   string
	Timeout time.Duration
}

// Service answers free-form farmer questions.
type Service interface {
	Reply(ctx context.Context, message string) (string, error)
}

type service struct {
	cfg    Config
	client GenerativeClient
	logger *slog.Logger
}

// NewService wires up the chatbot.
func NewService(cfg Config, client GenerativeClient, logger *slog.Logger) Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 12 * time.Second
	}
	return &service{
		cfg:    cfg,
		client: client,
		logger: logger.With("component", "chat.service"),
	}
}

func (s *service) Reply(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", apperrors.Wrap(apperrors.CodeInvalidInput, "message is required", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	text, err := s.client.GenerateContent(ctx, s.cfg.Model, message)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeLLMError, "chat model request failed", err)
	}
	return strings.TrimSpace(text), nil
}
