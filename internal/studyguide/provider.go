package studyguide

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/certlab/certprep-lambda/internal/config"
	"google.golang.org/genai"
)

type Provider interface {
	GenerateGuide(ctx context.Context, system, user string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) GenerateGuide(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)
	prompt := system + "\n\n" + user

	result, err := p.client.Models.GenerateContent(
		ctx,
		"gemini-2.0-flash",
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", fmt.Errorf("failed to generate study guide: %w", err)
	}

	raw := strings.TrimSpace(result.Text())
	if raw == "" {
		return "", errors.New("empty response from model")
	}

	raw = strings.TrimPrefix(raw, "```markdown")
	raw = strings.TrimSuffix(raw, "```")
	return strings.TrimSpace(raw), nil
}
