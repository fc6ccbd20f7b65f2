package commands

import (
	"context"
	"fmt"
	"strings"

	"bakery-shop/models"
	"bakery-shop/storefront"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	contains  string
	sortKey   string
	direction string

	flavor string
	box    string

	contactName    string
	contactEmail   string
	contactMessage string
)

func client() *storefront.Client {
	return storefront.NewClient(apiURL, nil)
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Search and sort the catalog",
	Example: `  bakery products
  bakery products --contains mini-palmiers
  bakery products --sort price --direction desc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		list := storefront.NewProductList(client())
		snap := list.Search(cmd.Context(), models.ProductQuery{
			Contains:  contains,
			Sort:      sortKey,
			Direction: direction,
		})
		printProducts("Products", snap)
		return nil
	},
}

var featuredCmd = &cobra.Command{
	Use:   "featured",
	Short: "Show the featured products",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := storefront.NewFeaturedSection(client()).Load(cmd.Context())
		printProducts("Featured", snap)
		return nil
	},
}

var productCmd = &cobra.Command{
	Use:   "product <slug>",
	Short: "Show a product with a customized description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view := storefront.NewDetailView(client())
		snap := view.Open(cmd.Context(), args[0])
		if snap.State == storefront.Loaded && (flavor != "" || box != "") {
			snap = view.Select(cmd.Context(), pick(flavor, snap.Flavor), pick(box, snap.Box))
		}
		printDetail(snap)
		return nil
	},
}

var faqCmd = &cobra.Command{
	Use:   "faq",
	Short: "Frequently asked questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		var view storefront.CollectionView[models.FAQEntry]
		snap := storefront.LoadFAQ(cmd.Context(), client(), &view)
		if snap.State != storefront.Loaded {
			muted("%s", snap.Message)
			return nil
		}
		title("FAQ")
		for _, e := range snap.Items {
			fmt.Println(lipgloss.NewStyle().Bold(true).Render(e.Question))
			fmt.Println("  " + e.Answer)
		}
		return nil
	},
}

var macaronsCmd = &cobra.Command{
	Use:   "macarons",
	Short: "Macaron flavor gallery",
	RunE: func(cmd *cobra.Command, args []string) error {
		var view storefront.CollectionView[models.MacaronFlavor]
		snap := storefront.LoadMacaronFlavors(cmd.Context(), client(), &view)
		if snap.State != storefront.Loaded {
			muted("%s", snap.Message)
			return nil
		}
		title("Macaron flavors")
		for _, f := range snap.Items {
			fmt.Println(cardStyle.Render(f.Name + "\n" + mutedStyle.Render(f.Description)))
		}
		return nil
	},
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send the bakery a message",
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, ok := storefront.ContactForm(cmd.Context(), client(), models.ContactRequest{
			Name:    contactName,
			Email:   contactEmail,
			Message: contactMessage,
		})
		if ok {
			success("%s", msg)
		} else {
			failure("%s", msg)
		}
		return nil
	},
}

func init() {
	productsCmd.Flags().StringVar(&contains, "contains", "", "Dash joined words the name must contain")
	productsCmd.Flags().StringVar(&sortKey, "sort", "name", "Sort by name or price")
	productsCmd.Flags().StringVar(&direction, "direction", "asc", "asc or desc")

	productCmd.Flags().StringVar(&flavor, "flavor", "", "Flavor to preview")
	productCmd.Flags().StringVar(&box, "box", "", "Box decoration to preview")

	contactCmd.Flags().StringVar(&contactName, "name", "", "Your name")
	contactCmd.Flags().StringVar(&contactEmail, "email", "", "Your email")
	contactCmd.Flags().StringVar(&contactMessage, "message", "", "Your message")

	rootCmd.AddCommand(productsCmd, featuredCmd, productCmd, faqCmd, macaronsCmd, contactCmd)
}

func pick(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func printProducts(heading string, snap storefront.Snapshot[models.Product]) {
	if snap.State != storefront.Loaded {
		muted("%s", snap.Message)
		return
	}
	title(heading)
	cards := []string{}
	for _, card := range storefront.ProductCards(snap.Items) {
		cards = append(cards, cardStyle.Render(fmt.Sprintf("%s\n%s\n%s", card.Title, card.Price, mutedStyle.Render(card.Link))))
	}
	fmt.Println(lipgloss.JoinVertical(lipgloss.Left, cards...))
}

func printDetail(snap storefront.DetailSnapshot) {
	if snap.Product == nil {
		muted("%s", snap.Message)
		return
	}
	card := storefront.ProductCard(*snap.Product)
	title(card.Title + "  " + card.Price)
	fmt.Println(snap.Description)
	if snap.State == storefront.Error {
		failure("%s", snap.Message)
	}
	if len(snap.Flavors) > 0 {
		muted("Flavors: %s", strings.Join(snap.Flavors, ", "))
	}
	if len(snap.Boxes) > 0 {
		muted("Boxes:   %s", strings.Join(snap.Boxes, ", "))
	}
}

// withProduct fetches a product for commands that need its name and price.
func withProduct(ctx context.Context, slug string) (*models.Product, error) {
	return client().Product(ctx, slug)
}
