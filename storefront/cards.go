package storefront

import "bakery-shop/models"

// Card is an item card in a product grid. Link carries the product slug so
// a card never has to be parsed back into a product name.
type Card struct {
	Title string
	Price string
	Image string
	Link  string
}

func ProductCard(p models.Product) Card {
	return Card{
		Title: p.Name,
		Price: "$" + p.Price.StringFixed(2),
		Image: p.Image,
		Link:  "/products/" + p.Slug,
	}
}

func ProductCards(products []models.Product) []Card {
	cards := make([]Card, 0, len(products))
	for _, p := range products {
		cards = append(cards, ProductCard(p))
	}
	return cards
}
