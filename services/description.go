package services

import (
	"fmt"
	"strings"
	"text/template"
)

// Words used for placeholders when a product is shown before the shopper
// picks a customization.
const (
	DefaultFlavor = "classic"
	DefaultBox    = "gift"
)

type customization struct {
	Flavor string
	Box    string
}

// ComposeDescription fills the {{.Flavor}} and {{.Box}} placeholders of a
// product description. Descriptions without placeholders get the flavor
// inserted as the third word and the box right before the last word.
func ComposeDescription(base, flavor, box string) (string, error) {
	if !strings.Contains(base, "{{") {
		return insertByPosition(base, flavor, box), nil
	}

	tmpl, err := template.New("description").Option("missingkey=error").Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse description template: %w", err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, customization{Flavor: flavor, Box: box}); err != nil {
		return "", fmt.Errorf("render description template: %w", err)
	}
	return sb.String(), nil
}

func insertByPosition(base, flavor, box string) string {
	words := strings.Fields(base)
	if len(words) < 3 {
		return strings.Join(append(words, flavor, box), " ")
	}

	last := len(words) - 1
	out := make([]string, 0, len(words)+2)
	out = append(out, words[:2]...)
	out = append(out, flavor)
	out = append(out, words[2:last]...)
	out = append(out, box, words[last])
	return strings.Join(out, " ")
}

// PlainDescription renders a placeholder description with the default
// customization. Descriptions without placeholders come back unchanged.
func PlainDescription(base string) string {
	if !strings.Contains(base, "{{") {
		return base
	}
	out, err := ComposeDescription(base, DefaultFlavor, DefaultBox)
	if err != nil {
		return base
	}
	return out
}
