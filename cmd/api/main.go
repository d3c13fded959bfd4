package main

import (
	_ "roads_authority/docs"
	"roads_authority/internal/adapter/http/routes"
	"roads_authority/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Roads Authority Citizen Services API
// @version         1.0
// @description     Personalised number plates, payments, offices, documents, road damage reports and push notifications.

// @contact.name   API Support
// @contact.email  support@ra.org.na

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run(config.Load())
}
