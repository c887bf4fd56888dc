package main

// @title bizbooks API
// @version 1.0
// @description Multi-business double-entry bookkeeping API.

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	Execute()
}
