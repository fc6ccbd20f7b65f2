package cart

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

const (
	MinQuantity = 1
	MaxQuantity = 10
)

type AddRequest struct {
	Key       string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  string
	Flavor    string
	Box       string
}

// LineView is one rendered line item.
type LineView struct {
	Key            string
	Label          string
	Customizations []string

	quantity int
	total    decimal.Decimal
}

// View is what the cart page currently shows.
type View struct {
	Lines []LineView
	Count int
	Total decimal.Decimal
}

func (v View) TotalText() string {
	return v.Total.StringFixed(2)
}

// Manager runs every operation as load, mutate, persist against its Store
// and keeps the last rendered View.
type Manager struct {
	store Store

	mu   sync.Mutex
	view View
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// ParseQuantity accepts whole numbers in [MinQuantity, MaxQuantity].
func ParseQuantity(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < MinQuantity || n > MaxQuantity {
		return 0, false
	}
	return n, true
}

// Add merges req into the line item with the same key, or appends a new one.
// An invalid quantity aborts the add without an error.
func (m *Manager) Add(ctx context.Context, req AddRequest) (bool, error) {
	qty, ok := ParseQuantity(req.Quantity)
	if !ok {
		return false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	items, err := m.store.Load(ctx)
	if err != nil {
		return false, err
	}

	units := make([]Customization, qty)
	for i := range units {
		units[i] = Customization{Flavor: req.Flavor, Box: req.Box}
	}

	merged := false
	for i := range items {
		if items[i].Key == req.Key {
			items[i].Customizations = append(items[i].Customizations, units...)
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, LineItem{
			Key:            req.Key,
			Name:           req.Name,
			UnitPrice:      req.UnitPrice,
			Customizations: units,
		})
	}

	if err := m.store.Save(ctx, items); err != nil {
		return false, err
	}
	return true, nil
}

// Render rebuilds the displayed view from the stored cart.
func (m *Manager) Render(ctx context.Context) (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items, err := m.store.Load(ctx)
	if err != nil {
		return View{}, err
	}

	view := View{Lines: []LineView{}, Total: decimal.Zero}
	for _, item := range items {
		line := LineView{
			Key:            item.Key,
			Label:          item.Label(),
			Customizations: make([]string, 0, item.Quantity()),
			quantity:       item.Quantity(),
			total:          item.Total(),
		}
		for _, c := range item.Customizations {
			line.Customizations = append(line.Customizations, c.String())
		}
		view.Lines = append(view.Lines, line)
		view.Count += line.quantity
		view.Total = view.Total.Add(line.total)
	}

	m.view = view
	return view, nil
}

// Remove deletes the line item with key from the store and takes its
// contribution off the displayed count and total.
func (m *Manager) Remove(ctx context.Context, key string) (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items, err := m.store.Load(ctx)
	if err != nil {
		return m.view, err
	}

	kept := items[:0]
	for _, item := range items {
		if item.Key != key {
			kept = append(kept, item)
		}
	}
	if err := m.store.Save(ctx, kept); err != nil {
		return m.view, err
	}

	lines := make([]LineView, 0, len(m.view.Lines))
	for _, line := range m.view.Lines {
		if line.Key == key {
			m.view.Count -= line.quantity
			m.view.Total = m.view.Total.Sub(line.total)
			continue
		}
		lines = append(lines, line)
	}
	m.view.Lines = lines
	return m.view, nil
}

// Clear empties the store and resets the displayed view.
func (m *Manager) Clear(ctx context.Context) (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Save(ctx, []LineItem{}); err != nil {
		return m.view, err
	}
	m.view = View{Lines: []LineView{}, Total: decimal.Zero}
	return m.view, nil
}

// Displayed returns the view as last rendered or adjusted.
func (m *Manager) Displayed() View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view
}
