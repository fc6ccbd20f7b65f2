package services

import (
	"context"
	"fmt"

	"bakery-shop/models"
	"bakery-shop/repositories"
	"bakery-shop/utils"
)

// ImageResolver turns a stored image reference into the URL shoppers load.
type ImageResolver interface {
	Resolve(ref string) string
}

type CatalogService struct {
	repo   repositories.CatalogRepository
	cache  *Cache
	images ImageResolver
}

func NewCatalogService(repo repositories.CatalogRepository, cache *Cache, images ImageResolver) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, images: images}
}

func (s *CatalogService) resolve(ref string) string {
	if s.images == nil {
		return ref
	}
	return s.images.Resolve(ref)
}

// ListProducts expects q to be validated and normalized already.
func (s *CatalogService) ListProducts(ctx context.Context, q models.ProductQuery) ([]models.Product, error) {
	key := fmt.Sprintf("products:%s:%s:%s", q.Contains, q.Sort, q.Direction)

	var products []models.Product
	if s.cache.Get(ctx, key, &products) {
		return products, nil
	}

	products, err := s.repo.ListProducts(ctx, q)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i].Image = s.resolve(products[i].Image)
		products[i].Description = PlainDescription(products[i].Description)
	}

	s.cache.Set(ctx, key, products)
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, slug string) (*models.Product, error) {
	product, err := s.repo.GetProduct(ctx, slug)
	if err != nil {
		return nil, err
	}
	product.Image = s.resolve(product.Image)
	product.Description = PlainDescription(product.Description)
	return product, nil
}

func (s *CatalogService) GetProductFlavors(ctx context.Context, slug string) ([]string, error) {
	return s.repo.GetProductFlavors(ctx, slug)
}

func (s *CatalogService) GetCustomDescription(ctx context.Context, slug, flavor, box string) (string, error) {
	product, err := s.repo.GetProduct(ctx, slug)
	if err != nil {
		return "", err
	}
	return ComposeDescription(product.Description, flavor, box)
}

func (s *CatalogService) Featured(ctx context.Context) ([]string, error) {
	var names []string
	if s.cache.Get(ctx, "featured", &names) {
		return names, nil
	}

	names, err := s.repo.FeaturedNames(ctx)
	if err != nil {
		return nil, err
	}
	titleCaseAll(names)
	s.cache.Set(ctx, "featured", names)
	return names, nil
}

func (s *CatalogService) MacaronFlavors(ctx context.Context) ([]models.MacaronFlavor, error) {
	flavors, err := s.repo.MacaronFlavors(ctx)
	if err != nil {
		return nil, err
	}
	for i := range flavors {
		flavors[i].Image = s.resolve(flavors[i].Image)
	}
	return flavors, nil
}

func (s *CatalogService) BoxDecorations(ctx context.Context) ([]string, error) {
	styles, err := s.repo.BoxDecorations(ctx)
	if err != nil {
		return nil, err
	}
	titleCaseAll(styles)
	return styles, nil
}

func titleCaseAll(values []string) {
	for i, v := range values {
		values[i] = utils.TitleCase(v)
	}
}

func (s *CatalogService) FAQ(ctx context.Context) ([]models.FAQEntry, error) {
	var entries []models.FAQEntry
	if s.cache.Get(ctx, "faq", &entries) {
		return entries, nil
	}

	entries, err := s.repo.FAQ(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, "faq", entries)
	return entries, nil
}
