package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURL    string
	session   string
	cartStore string
)

var rootCmd = &cobra.Command{
	Use:   "bakery",
	Short: "Bakery storefront API server and shopping client",
	Long: `bakery runs the storefront API and lets you browse the catalog and
manage a cart against a running server.

Server:
  bakery serve           Start the HTTP API
  bakery migrate         Apply schema and seed migrations

Shopping:
  bakery products        Search and sort products
  bakery product <slug>  Show a product and customize it
  bakery cart ...        Add, show, remove and clear cart items`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("BAKERY_API_URL", "http://localhost:8082"), "Storefront API base URL")
	rootCmd.PersistentFlags().StringVar(&session, "session", "default", "Shopping session name; each session has its own cart")
	rootCmd.PersistentFlags().StringVar(&cartStore, "cart-store", "file", "Where the cart lives: file or redis")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
