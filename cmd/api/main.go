package main

import (
	_ "trustify_claims/docs"
	"trustify_claims/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Trustify Claims API
// @version         1.0
// @description     Insurance claim lifecycle and notifications backed by DynamoDB and Redis Streams.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
