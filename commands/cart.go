package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bakery-shop/cart"
	"bakery-shop/config"
	"bakery-shop/utils"

	"github.com/spf13/cobra"
)

var quantity string

// validSession rejects session names that could leave the cart directory.
func validSession(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid session name %q", name)
	}
	return nil
}

func cartManager() (*cart.Manager, func(), error) {
	if err := validSession(session); err != nil {
		return nil, nil, err
	}

	switch cartStore {
	case "file":
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}
		path := filepath.Join(dir, "bakery", "cart-"+session+".json")
		return cart.NewManager(cart.NewFileStore(path)), func() {}, nil
	case "redis":
		client := config.ConnectRedis(config.LoadConfig())
		if client == nil {
			return nil, nil, errors.New("redis cart store selected but redis is not available")
		}
		return cart.NewManager(cart.NewRedisStore(client, session)), func() { client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown cart store %q", cartStore)
	}
}

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the shopping cart of the current session",
}

var cartAddCmd = &cobra.Command{
	Use:   "add <slug>",
	Short: "Add units of a product with one customization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		product, err := withProduct(cmd.Context(), utils.Slugify(args[0]))
		if err != nil {
			failure("Could not load %s: %v", args[0], err)
			return nil
		}

		m, done, err := cartManager()
		if err != nil {
			return err
		}
		defer done()

		unitFlavor, unitBox, err := defaultCustomization(cmd.Context(), product.Slug)
		if err != nil {
			failure("Could not load options for %s: %v", product.Name, err)
			return nil
		}

		added, err := m.Add(cmd.Context(), cart.AddRequest{
			Key:       product.Slug,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  quantity,
			Flavor:    unitFlavor,
			Box:       unitBox,
		})
		if err != nil {
			return err
		}
		if !added {
			return nil
		}
		return showCart(cmd, m)
	},
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, done, err := cartManager()
		if err != nil {
			return err
		}
		defer done()
		return showCart(cmd, m)
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <slug>",
	Short: "Remove a product and all of its units",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, done, err := cartManager()
		if err != nil {
			return err
		}
		defer done()

		if _, err := m.Render(cmd.Context()); err != nil {
			return err
		}
		view, err := m.Remove(cmd.Context(), utils.Slugify(args[0]))
		if err != nil {
			return err
		}
		printCart(view)
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, done, err := cartManager()
		if err != nil {
			return err
		}
		defer done()

		view, err := m.Clear(cmd.Context())
		if err != nil {
			return err
		}
		printCart(view)
		return nil
	},
}

func init() {
	cartAddCmd.Flags().StringVarP(&quantity, "quantity", "q", "1", "Units to add (1-10)")
	cartAddCmd.Flags().StringVar(&flavor, "flavor", "", "Flavor for these units")
	cartAddCmd.Flags().StringVar(&box, "box", "", "Box decoration for these units")

	cartCmd.AddCommand(cartAddCmd, cartShowCmd, cartRemoveCmd, cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}

// defaultCustomization fills in the first flavor and box decoration the
// detail page would preselect when the flags leave them out.
func defaultCustomization(ctx context.Context, slug string) (string, string, error) {
	unitFlavor, unitBox := flavor, box
	if unitFlavor == "" {
		flavors, err := client().Flavors(ctx, slug)
		if err != nil {
			return "", "", err
		}
		if len(flavors) > 0 {
			unitFlavor = flavors[0]
		}
	}
	if unitBox == "" {
		boxes, err := client().BoxDecorations(ctx)
		if err != nil {
			return "", "", err
		}
		if len(boxes) > 0 {
			unitBox = boxes[0]
		}
	}
	return unitFlavor, unitBox, nil
}

func showCart(cmd *cobra.Command, m *cart.Manager) error {
	view, err := m.Render(cmd.Context())
	if err != nil {
		return err
	}
	printCart(view)
	return nil
}

func printCart(view cart.View) {
	title(fmt.Sprintf("Cart: %d items, $%s", view.Count, view.TotalText()))
	for _, line := range view.Lines {
		fmt.Println(line.Label)
		for _, c := range line.Customizations {
			muted("    %s", c)
		}
	}
}
