package generator

import (
	"context"
	"hash/fnv"
	"strings"

	"github.com/fjod/go_storefront/internal/domain"
)

// ContentGenerator produces store content for a free-text prompt.
type ContentGenerator interface {
	Generate(ctx context.Context, prompt string) (domain.StoreContent, error)
}

// Templates is the offline generator. It never fails and always returns the
// same content for the same prompt.
type Templates struct{}

var _ ContentGenerator = Templates{}

func (Templates) Generate(_ context.Context, prompt string) (domain.StoreContent, error) {
	category := Category(prompt)
	return domain.StoreContent{
		StoreName:        templateName(category, prompt),
		StoreDescription: lookup(storeDescriptions, category),
		AboutContent:     lookup(aboutTemplates, category),
		Products:         templateProducts(category),
	}, nil
}

// Category infers the coarse store category from keywords in the prompt.
func Category(prompt string) string {
	lower := strings.ToLower(prompt)
	for _, ck := range categoryKeywords {
		for _, kw := range ck.keywords {
			if strings.Contains(lower, kw) {
				return ck.category
			}
		}
	}
	return CategoryGeneral
}

// Theme returns the color palette for a category.
func Theme(category string) domain.StoreTheme {
	if t, ok := themes[category]; ok {
		return t
	}
	return themes[CategoryGeneral]
}

func templateName(category, prompt string) string {
	names, ok := storeNames[category]
	if !ok {
		names = storeNames[CategoryGeneral]
	}
	return names[hash(prompt)%uint32(len(names))]
}

func templateProducts(category string) []domain.ProductDraft {
	rows, ok := productTemplates[category]
	if !ok {
		rows = productTemplates[CategoryGeneral]
	}
	out := make([]domain.ProductDraft, len(rows))
	copy(out, rows)
	return out
}

func lookup(table map[string]string, category string) string {
	if v, ok := table[category]; ok {
		return v
	}
	return table[CategoryGeneral]
}

func hash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
