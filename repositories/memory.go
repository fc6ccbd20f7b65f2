package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"bakery-shop/models"
)

// MemoryCatalog is an in-process CatalogRepository and FeedbackRepository.
// Its exported fields are the fixture data; set them before sharing it.
type MemoryCatalog struct {
	mu sync.RWMutex

	Products       []models.Product
	Flavors        map[string][]string
	Featured       []string
	Macarons       []models.MacaronFlavor
	Boxes          []string
	Questions      []models.FAQEntry
	feedbackByMail map[string]models.FeedbackSubmission
}

var (
	_ CatalogRepository  = (*MemoryCatalog)(nil)
	_ FeedbackRepository = (*MemoryCatalog)(nil)
)

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		Flavors:        map[string][]string{},
		feedbackByMail: map[string]models.FeedbackSubmission{},
	}
}

func (m *MemoryCatalog) ListProducts(_ context.Context, q models.ProductQuery) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tokens := q.Tokens()
	out := []models.Product{}
	for _, p := range m.Products {
		if containsAll(p.Name, tokens) {
			out = append(out, p)
		}
	}

	desc := q.Direction == "desc"
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if q.Sort == "price" && !a.Price.Equal(b.Price) {
			if desc {
				return a.Price.GreaterThan(b.Price)
			}
			return a.Price.LessThan(b.Price)
		}
		if q.Sort == "price" || !desc {
			return a.Name < b.Name
		}
		return a.Name > b.Name
	})
	return out, nil
}

func containsAll(name string, tokens []string) bool {
	lower := strings.ToLower(name)
	for _, t := range tokens {
		if !strings.Contains(lower, t) {
			return false
		}
	}
	return true
}

func (m *MemoryCatalog) find(slug string) (models.Product, bool) {
	for _, p := range m.Products {
		if strings.EqualFold(p.Slug, slug) {
			return p, true
		}
	}
	return models.Product{}, false
}

func (m *MemoryCatalog) GetProduct(_ context.Context, slug string) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.find(slug)
	if !ok {
		return nil, models.ErrProductNotFound
	}
	return &p, nil
}

func (m *MemoryCatalog) GetProductFlavors(_ context.Context, slug string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.find(slug)
	if !ok {
		return nil, models.ErrProductNotFound
	}
	return append([]string{}, m.Flavors[p.Slug]...), nil
}

func (m *MemoryCatalog) FeaturedNames(context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string{}, m.Featured...), nil
}

func (m *MemoryCatalog) MacaronFlavors(context.Context) ([]models.MacaronFlavor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.MacaronFlavor{}, m.Macarons...), nil
}

func (m *MemoryCatalog) BoxDecorations(context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string{}, m.Boxes...), nil
}

func (m *MemoryCatalog) FAQ(context.Context) ([]models.FAQEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.FAQEntry{}, m.Questions...), nil
}

func (m *MemoryCatalog) Create(_ context.Context, f *models.FeedbackSubmission) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.feedbackByMail[f.Email]; ok {
		return models.ErrDuplicateFeedback
	}
	f.CreatedAt = time.Now()
	m.feedbackByMail[f.Email] = *f
	return nil
}

func (m *MemoryCatalog) List(context.Context) ([]models.FeedbackSubmission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.FeedbackSubmission, 0, len(m.feedbackByMail))
	for _, f := range m.feedbackByMail {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
