package main

import (
	"bakery-shop/commands"
	_ "bakery-shop/docs"
)

// @title Bakery Storefront API
// @version 1.0
// @description Catalog, customization and contact endpoints of the bakery storefront.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	commands.Execute()
}
