package inference

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

const (
	defaultModel       = "gemini-2.0-flash"
	defaultTemperature = float32(0.2)
)

// ContentGenerator produces a text completion for a prompt.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
}

// AIClient is the Gemini backed ContentGenerator.
type AIClient struct {
	client *genai.Client
	model  string
}

func NewAIClient(ctx context.Context, apiKey, model string) (*AIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is not set")
	}
	if model == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &AIClient{
		client: client,
		model:  model,
	}, nil
}

func (ai *AIClient) GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return result.Text(), nil
}

var _ Provider = (*GeminiProvider)(nil)

// GeminiProvider infers destination tags with a Gemini model.
type GeminiProvider struct {
	generator ContentGenerator
	logger    *slog.Logger
}

func NewGeminiProvider(generator ContentGenerator, logger *slog.Logger) *GeminiProvider {
	return &GeminiProvider{
		generator: generator,
		logger:    logger,
	}
}

func (p *GeminiProvider) Infer(ctx context.Context, city, country string, vocabulary types.Vocabulary) (*Result, error) {
	ctx, span := otel.Tracer("InferenceProvider").Start(ctx, "GeminiInfer", trace.WithAttributes(
		attribute.String("city", city),
		attribute.String("country", country),
	))
	defer span.End()

	l := p.logger.With(slog.String("city", city), slog.String("country", country))
	l.DebugContext(ctx, "Requesting destination tags from model")

	prompt := BuildPrompt(city, country, vocabulary)
	raw, err := p.generator.GenerateContent(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(defaultTemperature),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		l.WarnContext(ctx, "Model call failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "model call failed")
		return nil, fmt.Errorf("%w: %w", ErrInferenceUnavailable, err)
	}

	res, err := ParseResponse(raw)
	if err != nil {
		l.WarnContext(ctx, "Could not parse model response", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid model response")
		return nil, err
	}

	span.SetAttributes(attribute.String("confidence", res.Confidence))
	span.SetStatus(codes.Ok, "destination inferred")
	l.InfoContext(ctx, "Destination tags inferred", slog.String("confidence", res.Confidence))
	return res, nil
}
