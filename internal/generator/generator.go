// Package generator turns a free-text prompt into a complete store. It asks an
// LLM first and falls back to built-in templates when that fails.
package generator

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/fjod/go_storefront/internal/domain"
)

// generateTimeout bounds a shared generation once it no longer follows the
// first caller's context.
const generateTimeout = 60 * time.Second

const (
	contactPhone   = "+1 (555) 123-4567"
	contactAddress = "123 Main Street, City, State 12345"
)

var ErrEmptyPrompt = errors.New("prompt is empty")

// Result is a generated store plus whether the template fallback produced it.
type Result struct {
	Store    domain.Store
	Fallback bool
	Notice   string
}

type Service struct {
	primary  ContentGenerator
	fallback ContentGenerator
	log      *slog.Logger
	sfg      singleflight.Group

	now   func() time.Time
	newID func() string
}

// NewService builds a Service. primary may be nil, in which case templates are
// always used.
func NewService(primary ContentGenerator, log *slog.Logger) *Service {
	return &Service{
		primary:  primary,
		fallback: Templates{},
		log:      log.With("component", "generator"),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Generate builds a store for prompt. Identical prompts in flight at the same
// time share one generation, which keeps running if the caller that started it
// goes away. Each caller still returns early when its own ctx is done.
func (s *Service) Generate(ctx context.Context, prompt string) (Result, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Result{}, ErrEmptyPrompt
	}

	ch := s.sfg.DoChan(prompt, func() (any, error) {
		gctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), generateTimeout)
		defer cancel()
		return s.generate(gctx, prompt)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return Result{}, res.Err
	}
	if res.Shared {
		s.log.DebugContext(ctx, "generation shared", "prompt", prompt)
	}
	return res.Val.(Result), nil
}

func (s *Service) generate(ctx context.Context, prompt string) (Result, error) {
	var res Result

	content, err := s.fromPrimary(ctx, prompt)
	if err != nil {
		s.log.WarnContext(ctx, "ai generation failed, using templates", "error", err)
		res.Fallback = true
		res.Notice = fallbackNotice(err)
		if content, err = s.fallback.Generate(ctx, prompt); err != nil {
			return Result{}, err
		}
	}

	res.Store = s.assemble(prompt, content)
	s.log.InfoContext(ctx, "store generated",
		"store_id", res.Store.ID,
		"name", res.Store.Name,
		"category", res.Store.Category,
		"products", len(res.Store.Products),
		"fallback", res.Fallback,
	)
	return res, nil
}

func (s *Service) fromPrimary(ctx context.Context, prompt string) (domain.StoreContent, error) {
	if s.primary == nil {
		return domain.StoreContent{}, ErrNotConfigured
	}
	c, err := s.primary.Generate(ctx, prompt)
	if err != nil {
		return domain.StoreContent{}, err
	}
	if err := c.Validate(); err != nil {
		return domain.StoreContent{}, err
	}
	return c, nil
}

func (s *Service) assemble(prompt string, c domain.StoreContent) domain.Store {
	category := Category(prompt)

	products := make([]domain.Product, 0, len(c.Products))
	for _, d := range c.Products {
		products = append(products, domain.Product{
			ID:          s.newID(),
			Name:        d.Name,
			Description: d.Description,
			Price:       d.Price,
			Category:    d.Category,
			InStock:     inStock(prompt, d.Name),
		})
	}

	return domain.Store{
		ID:           s.newID(),
		Name:         c.StoreName,
		Description:  c.StoreDescription,
		Category:     category,
		Theme:        Theme(category),
		Products:     products,
		AboutContent: c.AboutContent,
		ContactInfo: domain.ContactInfo{
			Email:   ContactEmail(c.StoreName),
			Phone:   contactPhone,
			Address: contactAddress,
		},
		CreatedAt: s.now().UTC(),
	}
}

// ContactEmail derives the store mailbox from its name.
func ContactEmail(storeName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(storeName) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return "info@" + b.String() + ".com"
}

// inStock marks roughly nine in ten products as available.
func inStock(prompt, name string) bool {
	return hash(prompt+"\x00"+name)%10 != 0
}

func fallbackNotice(err error) string {
	if errors.Is(err, ErrNotConfigured) {
		return "AI generation is not configured; the store was built from templates."
	}
	return "AI generation failed; the store was built from templates."
}
