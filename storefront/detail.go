package storefront

import (
	"context"
	"errors"
	"sync"

	"bakery-shop/models"
)

// DetailSnapshot is a consistent copy of the product detail page.
type DetailSnapshot struct {
	State       State
	Product     *models.Product
	Flavors     []string
	Boxes       []string
	Flavor      string
	Box         string
	Description string
	Message     string
}

// DetailView is the single product page with live customization. A new
// selection cancels the description request of the previous one, so only
// the latest selection can update the description.
type DetailView struct {
	client *Client

	mu     sync.Mutex
	snap   DetailSnapshot
	seq    uint64
	cancel context.CancelFunc
}

func NewDetailView(client *Client) *DetailView {
	return &DetailView{client: client}
}

// Open fetches the product, its flavors and the box decorations one after
// another, then the description for the first flavor and box. A product
// without flavors or boxes keeps its plain description. Opening a product
// cancels any description request still running for the previous one.
func (v *DetailView) Open(ctx context.Context, slug string) DetailSnapshot {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.seq++
	seq := v.seq
	v.snap = DetailSnapshot{State: Loading}
	v.mu.Unlock()

	product, err := v.client.Product(ctx, slug)
	if err != nil {
		return v.fail(seq)
	}
	flavors, err := v.client.Flavors(ctx, slug)
	if err != nil {
		return v.fail(seq)
	}
	boxes, err := v.client.BoxDecorations(ctx)
	if err != nil {
		return v.fail(seq)
	}

	v.mu.Lock()
	if seq != v.seq {
		defer v.mu.Unlock()
		return v.snapshotLocked()
	}
	v.snap = DetailSnapshot{
		State:       Loaded,
		Product:     product,
		Flavors:     flavors,
		Boxes:       boxes,
		Description: product.Description,
	}
	v.mu.Unlock()

	if len(flavors) == 0 || len(boxes) == 0 {
		return v.Snapshot()
	}
	return v.Select(ctx, flavors[0], boxes[0])
}

// Select changes the customization and refreshes the description.
func (v *DetailView) Select(ctx context.Context, flavor, box string) DetailSnapshot {
	v.mu.Lock()
	if v.snap.Product == nil {
		defer v.mu.Unlock()
		return v.snapshotLocked()
	}
	if v.cancel != nil {
		v.cancel()
	}
	v.seq++
	seq := v.seq
	reqCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.snap.Flavor = flavor
	v.snap.Box = box
	slug := v.snap.Product.Slug
	v.mu.Unlock()

	description, err := v.client.CustomDescription(reqCtx, slug, flavor, box)

	v.mu.Lock()
	defer v.mu.Unlock()
	cancel()
	if seq != v.seq {
		return v.snapshotLocked()
	}
	v.cancel = nil

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			v.snap.State = Error
			v.snap.Message = TryAgainMessage
		}
		return v.snapshotLocked()
	}
	v.snap.Description = description
	return v.snapshotLocked()
}

func (v *DetailView) fail(seq uint64) DetailSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.seq {
		return v.snapshotLocked()
	}
	v.snap = DetailSnapshot{State: Error, Message: TryAgainMessage}
	return v.snapshotLocked()
}

func (v *DetailView) Snapshot() DetailSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *DetailView) snapshotLocked() DetailSnapshot {
	snap := v.snap
	snap.Flavors = append([]string(nil), v.snap.Flavors...)
	snap.Boxes = append([]string(nil), v.snap.Boxes...)
	return snap
}
