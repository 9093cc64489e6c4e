package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

type implGemini struct {
	apiKeys    []string
	currentKey int
	mu         sync.Mutex
	logger     logger.Logger
}

// NewGemini creates a Generator that rotates through the supplied Gemini
// API keys on quota errors.
func NewGemini(apiKeys []string, log logger.Logger) (Generator, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("no Gemini API keys configured")
	}
	return &implGemini{
		apiKeys: apiKeys,
		logger:  log,
	}, nil
}

// GenerateText sends the prompt to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors.
func (g *implGemini) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		key := g.nextKey(false)

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.nextKey(true)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				g.logger.Warn(ctx, "Gemini key rate limited, rotating...")
				g.nextKey(true)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// nextKey returns the current key, advancing first when rotate is set.
func (g *implGemini) nextKey(rotate bool) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if rotate {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
	return g.apiKeys[g.currentKey]
}
