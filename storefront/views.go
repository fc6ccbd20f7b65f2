package storefront

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"bakery-shop/models"
	"bakery-shop/utils"
)

// TryAgainMessage replaces any fetch failure shown to the shopper.
const TryAgainMessage = "Sorry, we couldn't load this right now. Please try again later."

type State int

const (
	Loading State = iota
	Loaded
	Empty
	Error
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Empty:
		return "empty"
	default:
		return "error"
	}
}

// Snapshot is a consistent copy of a collection view.
type Snapshot[T any] struct {
	State   State
	Items   []T
	Message string
}

// CollectionView holds one list on a page. Every Load replaces the previous
// items; results are never merged.
type CollectionView[T any] struct {
	mu      sync.Mutex
	state   State
	items   []T
	message string
}

func (v *CollectionView[T]) Load(ctx context.Context, emptyMessage string, fetch func(context.Context) ([]T, error)) Snapshot[T] {
	v.mu.Lock()
	v.state = Loading
	v.items = nil
	v.message = ""
	v.mu.Unlock()

	items, err := fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	switch {
	case err != nil:
		v.state = Error
		v.message = TryAgainMessage
	case len(items) == 0:
		v.state = Empty
		v.message = emptyMessage
	default:
		v.state = Loaded
		v.items = items
	}
	return v.snapshotLocked()
}

func (v *CollectionView[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *CollectionView[T]) snapshotLocked() Snapshot[T] {
	return Snapshot[T]{
		State:   v.state,
		Items:   append([]T(nil), v.items...),
		Message: v.message,
	}
}

// ProductList is the searchable, sortable product page.
type ProductList struct {
	client *Client
	view   CollectionView[models.Product]
}

func NewProductList(client *Client) *ProductList {
	return &ProductList{client: client}
}

// Search reissues the product query with the current form values.
func (l *ProductList) Search(ctx context.Context, q models.ProductQuery) Snapshot[models.Product] {
	empty := fmt.Sprintf("No results for '%s'", strings.ReplaceAll(q.Contains, "-", " "))
	return l.view.Load(ctx, empty, func(ctx context.Context) ([]models.Product, error) {
		return l.client.Products(ctx, q)
	})
}

func (l *ProductList) Snapshot() Snapshot[models.Product] {
	return l.view.Snapshot()
}

// FeaturedSection loads the featured names, then each product in order.
// One failed product fetch fails the whole section.
type FeaturedSection struct {
	client *Client
	view   CollectionView[models.Product]
}

func NewFeaturedSection(client *Client) *FeaturedSection {
	return &FeaturedSection{client: client}
}

func (f *FeaturedSection) Load(ctx context.Context) Snapshot[models.Product] {
	return f.view.Load(ctx, "No featured items today", func(ctx context.Context) ([]models.Product, error) {
		names, err := f.client.Featured(ctx)
		if err != nil {
			return nil, err
		}

		products := make([]models.Product, 0, len(names))
		for _, name := range names {
			p, err := f.client.Product(ctx, utils.Slugify(name))
			if err != nil {
				return nil, fmt.Errorf("featured %q: %w", name, err)
			}
			products = append(products, *p)
		}
		return products, nil
	})
}

// LoadMacaronFlavors fills a flavor gallery view.
func LoadMacaronFlavors(ctx context.Context, client *Client, view *CollectionView[models.MacaronFlavor]) Snapshot[models.MacaronFlavor] {
	return view.Load(ctx, "No flavors available", client.MacaronFlavors)
}

// LoadFAQ fills the FAQ view.
func LoadFAQ(ctx context.Context, client *Client, view *CollectionView[models.FAQEntry]) Snapshot[models.FAQEntry] {
	return view.Load(ctx, "No questions yet", client.FAQ)
}

// ContactForm submits the contact form. Rejections the shopper can fix are
// shown with the server's message; anything else gets TryAgainMessage.
func ContactForm(ctx context.Context, client *Client, req models.ContactRequest) (string, bool) {
	confirmation, err := client.Contact(ctx, req)
	if err == nil {
		return confirmation, true
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Status >= 400 && statusErr.Status < 500 {
		return statusErr.Message, false
	}
	return TryAgainMessage, false
}
