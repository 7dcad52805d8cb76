package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextFromResponse(t *testing.T) {
	tests := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		expected string
	}{
		{
			name:     "nil response",
			resp:     nil,
			expected: "",
		},
		{
			name:     "no candidates",
			resp:     &genai.GenerateContentResponse{},
			expected: "",
		},
		{
			name:     "candidate without content",
			resp:     &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			expected: "",
		},
		{
			name: "text parts are joined",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Text(`["Q1",`), genai.Text(` "Q2"]`)}},
			}}},
			expected: `["Q1", "Q2"]`,
		},
		{
			name: "non-text parts are skipped",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}, genai.Text("Summary")}},
			}}},
			expected: "Summary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractTextFromResponse(tt.resp))
		})
	}
}

func TestNewClient_ConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		want   string
	}{
		{name: "gemini without key", config: DefaultGeminiConfig(), want: "GEMINI_API_KEY is not set"},
		{name: "anthropic without key", config: DefaultAnthropicConfig(), want: "ANTHROPIC_API_KEY is not set"},
		{name: "unknown provider", config: &Config{Provider: "openai"}, want: `unsupported provider "openai"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(context.Background(), tt.config, "")
			assert.Nil(t, client)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Contains(t, cfgErr.Message, tt.want)
		})
	}
}

func TestNewClient_Anthropic(t *testing.T) {
	client, err := NewClient(context.Background(), DefaultAnthropicConfig(), "sk-ant-test")
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, ProviderAnthropic, client.Provider())
	assert.NotEmpty(t, client.GetModel(TierStandard))
}
