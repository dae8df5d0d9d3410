package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker/v2"

	"github.com/fjod/go_storefront/internal/domain"
)

var (
	ErrNotConfigured   = errors.New("openai api key not configured")
	ErrEmptyResponse   = errors.New("no content generated")
	ErrInvalidResponse = errors.New("invalid response format")
)

const (
	defaultModel     = openai.GPT3Dot5Turbo
	defaultProducts  = 15
	temperature      = 0.7
	storeMaxTokens   = 2000
	productMaxTokens = 200

	breakerFailures = 3
	breakerCooldown = 30 * time.Second
)

type LLMConfig struct {
	APIKey   string
	Model    string
	BaseURL  string
	Products int
	Log      *slog.Logger
}

// LLM generates store content through an OpenAI compatible chat completion API.
// Consecutive API failures open a circuit breaker so callers fall back fast.
type LLM struct {
	client   *openai.Client
	breaker  *gobreaker.CircuitBreaker[openai.ChatCompletionResponse]
	model    string
	products int
}

var _ ContentGenerator = (*LLM)(nil)

// NewLLM returns an LLM. With an empty API key every call fails with
// ErrNotConfigured, which callers treat like any other generation error.
func NewLLM(cfg LLMConfig) *LLM {
	l := &LLM{model: cfg.Model, products: cfg.Products}
	if l.model == "" {
		l.model = defaultModel
	}
	if l.products <= 0 {
		l.products = defaultProducts
	}
	if cfg.APIKey != "" {
		oc := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			oc.BaseURL = cfg.BaseURL
		}
		l.client = openai.NewClientWithConfig(oc)
	}

	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	l.breaker = gobreaker.NewCircuitBreaker[openai.ChatCompletionResponse](gobreaker.Settings{
		Name:    "openai",
		Timeout: breakerCooldown,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= breakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
	return l
}

func (l *LLM) Configured() bool { return l.client != nil }

func (l *LLM) Generate(ctx context.Context, prompt string) (domain.StoreContent, error) {
	var content domain.StoreContent
	system := fmt.Sprintf(`You are a helpful assistant that generates realistic store content based on user prompts.
You should respond with a JSON object containing:
- storeName: A catchy store name
- storeDescription: A brief store description (1-2 sentences)
- aboutContent: A detailed about section (2-3 paragraphs)
- products: Array of %d products with name, description, price, and category

Make sure all content is realistic and matches the store theme. Prices should be reasonable for the product type.
Keep product descriptions concise but appealing (1-2 sentences).`, l.products)

	if err := l.complete(ctx, system, "Generate store content for: "+prompt, storeMaxTokens, &content); err != nil {
		return domain.StoreContent{}, err
	}
	if err := content.Validate(); err != nil {
		return domain.StoreContent{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return content, nil
}

// ProductSuggestion is the detail the LLM fills in for a product name.
type ProductSuggestion struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// ProductDetails suggests a description, price and category for a product
// in a store of the given type.
func (l *LLM) ProductDetails(ctx context.Context, storeType, productName string) (ProductSuggestion, error) {
	var s ProductSuggestion
	system := fmt.Sprintf(`Generate realistic product details for a %s store.
Respond with JSON containing description (1-2 sentences), price (number), and category (string).
Make prices reasonable for the product type.`, storeType)

	if err := l.complete(ctx, system, "Product: "+productName, productMaxTokens, &s); err != nil {
		return ProductSuggestion{}, err
	}
	if s.Price < 0 {
		return ProductSuggestion{}, fmt.Errorf("%w: negative price", ErrInvalidResponse)
	}
	return s, nil
}

func (l *LLM) complete(ctx context.Context, system, user string, maxTokens int, out any) error {
	if l.client == nil {
		return ErrNotConfigured
	}

	resp, err := l.breaker.Execute(func() (openai.ChatCompletionResponse, error) {
		return l.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: l.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: system},
				{Role: openai.ChatMessageRoleUser, Content: user},
			},
			Temperature: temperature,
			MaxTokens:   maxTokens,
		})
	})
	if err != nil {
		return fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return ErrEmptyResponse
	}

	if err := json.Unmarshal([]byte(stripFence(resp.Choices[0].Message.Content)), out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return nil
}

// stripFence removes a markdown code fence around the JSON body, if present.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
