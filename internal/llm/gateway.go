package llm

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Gateway sends a prompt to the configured provider and returns the raw completion.
// Every call is single-shot: no retries, no caching, no state shared between calls.
type Gateway struct {
	client Client
	tier   ModelTier
	logger logrus.FieldLogger
}

// NewGateway wraps client. The tier selects the model used by Complete.
func NewGateway(client Client, tier ModelTier, logger logrus.FieldLogger) *Gateway {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Gateway{client: client, tier: tier, logger: logger}
}

// WithTier returns a gateway sharing the same client but using another model tier.
func (g *Gateway) WithTier(tier ModelTier) *Gateway {
	return &Gateway{client: g.client, tier: tier, logger: g.logger}
}

// Complete returns the provider's text for prompt. Failures are *AuthError, *QuotaError,
// *EmptyResponseError or *ProviderError.
func (g *Gateway) Complete(ctx context.Context, prompt string) (string, error) {
	provider := g.client.Provider()
	model := g.client.GetModel(g.tier)
	log := g.logger.WithFields(logrus.Fields{
		"provider":     provider,
		"model":        model,
		"prompt_chars": len(prompt),
	})

	start := time.Now()
	text, err := g.client.GenerateContent(ctx, prompt, g.tier)
	elapsed := time.Since(start)
	if err != nil {
		classified := Classify(provider, err)
		log.WithError(classified).WithField("duration", elapsed).Warn("completion failed")
		return "", classified
	}

	if strings.TrimSpace(text) == "" {
		log.WithField("duration", elapsed).Warn("completion was empty")
		return "", &EmptyResponseError{Provider: provider, Model: model}
	}

	log.WithFields(logrus.Fields{
		"duration":       elapsed,
		"response_chars": len(text),
	}).Debug("completion finished")
	return text, nil
}

// Close releases the underlying client.
func (g *Gateway) Close() error {
	return g.client.Close()
}
