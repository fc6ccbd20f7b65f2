package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cheesecake(qty, flavor, box string) AddRequest {
	return AddRequest{
		Key:       "cheesecake",
		Name:      "Cheesecake",
		UnitPrice: decimal.RequireFromString("32.00"),
		Quantity:  qty,
		Flavor:    flavor,
		Box:       box,
	}
}

func palmiers(qty string) AddRequest {
	return AddRequest{
		Key:       "mini-palmiers",
		Name:      "Mini Palmiers",
		UnitPrice: decimal.RequireFromString("9.75"),
		Quantity:  qty,
		Flavor:    "Plain",
		Box:       "Ribbon",
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{" 10 ", 10, true},
		{"0", 0, false},
		{"11", 0, false},
		{"-2", 0, false},
		{"two", 0, false},
		{"2.5", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseQuantity(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddMergesByKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store)

	added, err := m.Add(ctx, cheesecake("2", "Caramel", "Bow"))
	require.NoError(t, err)
	require.True(t, added)

	added, err = m.Add(ctx, cheesecake("1", "Raspberry", "Plain"))
	require.NoError(t, err)
	require.True(t, added)

	items, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity())
	assert.Equal(t, []Customization{
		{Flavor: "Caramel", Box: "Bow"},
		{Flavor: "Caramel", Box: "Bow"},
		{Flavor: "Raspberry", Box: "Plain"},
	}, items[0].Customizations)
}

func TestAddRejectsInvalidQuantity(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store)

	for _, qty := range []string{"0", "11", "abc"} {
		added, err := m.Add(ctx, cheesecake(qty, "Caramel", "Bow"))
		require.NoError(t, err)
		assert.False(t, added, qty)
	}

	items, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRender(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())

	_, err := m.Add(ctx, cheesecake("2", "Caramel", "Bow"))
	require.NoError(t, err)
	_, err = m.Add(ctx, palmiers("3"))
	require.NoError(t, err)

	view, err := m.Render(ctx)
	require.NoError(t, err)

	require.Len(t, view.Lines, 2)
	assert.Equal(t, "2 Cheesecake - $64.00", view.Lines[0].Label)
	assert.Equal(t, []string{"Flavor: Caramel | Box: Bow", "Flavor: Caramel | Box: Bow"}, view.Lines[0].Customizations)
	assert.Equal(t, "3 Mini Palmiers - $29.25", view.Lines[1].Label)
	assert.Equal(t, 5, view.Count)
	assert.Equal(t, "93.25", view.TotalText())
	assert.Equal(t, view, m.Displayed())
}

func TestRemoveUpdatesDisplayedTotals(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store)

	_, err := m.Add(ctx, cheesecake("2", "Caramel", "Bow"))
	require.NoError(t, err)
	_, err = m.Add(ctx, palmiers("3"))
	require.NoError(t, err)
	_, err = m.Render(ctx)
	require.NoError(t, err)

	view, err := m.Remove(ctx, "cheesecake")
	require.NoError(t, err)
	assert.Equal(t, 3, view.Count)
	assert.Equal(t, "29.25", view.TotalText())
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "mini-palmiers", view.Lines[0].Key)

	items, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "mini-palmiers", items[0].Key)

	// Removing an absent key changes nothing.
	view, err = m.Remove(ctx, "cheesecake")
	require.NoError(t, err)
	assert.Equal(t, 3, view.Count)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store)

	_, err := m.Add(ctx, palmiers("4"))
	require.NoError(t, err)
	_, err = m.Render(ctx)
	require.NoError(t, err)

	view, err := m.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Count)
	assert.Equal(t, "0.00", view.TotalText())
	assert.Empty(t, view.Lines)

	items, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
