package repositories

import (
	"bakery-shop/models"

	"github.com/shopspring/decimal"
)

// SeededMemoryCatalog returns a MemoryCatalog holding the same catalog the
// seed migration loads into Postgres.
func SeededMemoryCatalog() *MemoryCatalog {
	m := NewMemoryCatalog()
	m.Products = []models.Product{
		{
			Slug:        "cheesecake",
			Name:        "Cheesecake",
			Price:       decimal.RequireFromString("32.00"),
			Description: "Our signature {{.Flavor}} cheesecake, baked slowly on a buttery graham crust and finished with a {{.Box}} topper.",
			Image:       "images/cheesecake.jpg",
		},
		{
			Slug:        "french-macarons",
			Name:        "French Macarons",
			Price:       decimal.RequireFromString("18.50"),
			Description: "A dozen delicate almond shells filled with smooth ganache and packed in a gift box.",
			Image:       "images/macarons.jpg",
		},
		{
			Slug:        "mini-palmiers",
			Name:        "Mini Palmiers",
			Price:       decimal.RequireFromString("9.75"),
			Description: "Crisp caramelized puff pastry hearts rolled in sugar and baked golden.",
			Image:       "images/palmiers.jpg",
		},
		{
			Slug:        "chocolate-croissant",
			Name:        "Chocolate Croissant",
			Price:       decimal.RequireFromString("4.25"),
			Description: "Flaky laminated dough wrapped around two bars of dark chocolate.",
			Image:       "images/croissant.jpg",
		},
		{
			Slug:        "celebration-cake",
			Name:        "Celebration Cake",
			Price:       decimal.RequireFromString("45.00"),
			Description: "Three layers of vanilla sponge with {{.Flavor}} buttercream, delivered in a {{.Box}} box.",
			Image:       "images/celebration-cake.jpg",
		},
		{
			Slug:        "mini-fruit-tarts",
			Name:        "Mini Fruit Tarts",
			Price:       decimal.RequireFromString("14.00"),
			Description: "Six shortcrust shells with vanilla custard and seasonal fruit.",
			Image:       "images/fruit-tarts.jpg",
		},
	}
	m.Flavors = map[string][]string{
		"cheesecake":       {"Classic", "Caramel", "Raspberry"},
		"french-macarons":  {"Pistachio", "Rose", "Salted Caramel"},
		"celebration-cake": {"Vanilla", "Chocolate", "Lemon"},
	}
	m.Featured = []string{"Cheesecake", "French Macarons", "Chocolate Croissant"}
	m.Macarons = []models.MacaronFlavor{
		{Name: "Lemon", Description: "Tart lemon curd in a sunny shell.", Image: "images/macaron-lemon.jpg"},
		{Name: "Pistachio", Description: "Roasted Sicilian pistachio ganache.", Image: "images/macaron-pistachio.jpg"},
		{Name: "Rose", Description: "Rose water buttercream with a hint of lychee.", Image: "images/macaron-rose.jpg"},
		{Name: "Salted Caramel", Description: "Burnt sugar caramel with fleur de sel.", Image: "images/macaron-caramel.jpg"},
	}
	m.Boxes = []string{"Bow", "Ribbon", "Floral", "Plain"}
	m.Questions = []models.FAQEntry{
		{ID: 1, Question: "Do you deliver?", Answer: "We deliver within ten miles of the bakery from Tuesday to Saturday."},
		{ID: 2, Question: "How far ahead should I order a cake?", Answer: "Please order celebration cakes at least three days in advance."},
		{ID: 3, Question: "Do you offer gluten free options?", Answer: "Our macarons are made with almond flour and contain no wheat."},
	}
	return m
}
