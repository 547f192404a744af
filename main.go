package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/h3tools/hashtrack/cmd/app"
)

// @contact.name   hashtrack maintainers
//
// @license.name  MIT
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
