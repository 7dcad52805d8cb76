package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jonathan/resume-studio/internal/coach"
	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/llm"
)

// newCoach connects to the configured provider. Structured tasks use the standard
// tier and resume drafting uses the advanced tier. The returned gateway must be closed.
func newCoach(ctx context.Context, cfg *config.ServerConfig, logger logrus.FieldLogger) (*coach.Service, *llm.Gateway, error) {
	llmConfig := llm.ConfigFor(cfg.LLMProvider)
	if llmConfig == nil {
		return nil, nil, &llm.ConfigError{Message: fmt.Sprintf("unsupported provider %q", cfg.LLMProvider)}
	}

	client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return nil, nil, err
	}

	structured := llm.NewGateway(client, llm.TierStandard, logger)
	prose := structured.WithTier(llm.TierAdvanced)

	logger.WithFields(logrus.Fields{
		"provider":         llmConfig.Provider,
		"structured_model": client.GetModel(llm.TierStandard),
		"prose_model":      client.GetModel(llm.TierAdvanced),
	}).Info("llm gateway ready")

	return coach.NewService(structured, prose, logger), structured, nil
}
