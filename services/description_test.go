package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeDescriptionTemplate(t *testing.T) {
	base := "Our signature {{.Flavor}} cheesecake, baked slowly on a buttery graham crust and finished with a {{.Box}} topper."

	got, err := ComposeDescription(base, "Caramel", "Bow")
	require.NoError(t, err)
	assert.Equal(t, "Our signature Caramel cheesecake, baked slowly on a buttery graham crust and finished with a Bow topper.", got)
}

func TestComposeDescriptionPositional(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		flavor string
		box    string
		want   string
	}{
		{
			name:   "flavor third and box before the last word",
			base:   "A rich cheesecake in a box",
			flavor: "Caramel",
			box:    "Bow",
			want:   "A rich Caramel cheesecake in a Bow box",
		},
		{
			name:   "three words",
			base:   "Fresh warm bread",
			flavor: "Rye",
			box:    "Plain",
			want:   "Fresh warm Rye Plain bread",
		},
		{
			name:   "two words",
			base:   "Warm bread",
			flavor: "Rye",
			box:    "Plain",
			want:   "Warm bread Rye Plain",
		},
		{
			name:   "empty description",
			base:   "",
			flavor: "Rye",
			box:    "Plain",
			want:   "Rye Plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComposeDescription(tt.base, tt.flavor, tt.box)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComposeDescriptionKeepsEveryWord(t *testing.T) {
	base := "Three layers of vanilla sponge with buttercream delivered boxed"
	got, err := ComposeDescription(base, "Lemon", "Floral")
	require.NoError(t, err)

	words := strings.Fields(got)
	assert.Len(t, words, len(strings.Fields(base))+2)
	assert.Equal(t, "Lemon", words[2])
	assert.Equal(t, "Floral", words[len(words)-2])
}

func TestComposeDescriptionBadTemplate(t *testing.T) {
	_, err := ComposeDescription("Broken {{.Flavor", "Caramel", "Bow")
	assert.Error(t, err)

	_, err = ComposeDescription("Unknown {{.Topping}}", "Caramel", "Bow")
	assert.Error(t, err)
}

func TestPlainDescription(t *testing.T) {
	assert.Equal(t,
		"Three layers of vanilla sponge with classic buttercream, delivered in a gift box.",
		PlainDescription("Three layers of vanilla sponge with {{.Flavor}} buttercream, delivered in a {{.Box}} box."))
	assert.Equal(t, "Flaky dough.", PlainDescription("Flaky dough."))
	assert.Equal(t, "Broken {{.Flavor", PlainDescription("Broken {{.Flavor"))
}
