package main

import "github.com/schergr/interiordesign/internal/cmd"

// @title Interior Design API
// @version 1.0
// @description CRUD API for an interior design business: vendors, products, clients, projects, leads, contracts, tasks and billing.

// @host localhost:5000
// @BasePath /

// @securityDefinitions.basic BasicAuth

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cmd.Execute()
}
