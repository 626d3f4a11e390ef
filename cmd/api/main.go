package main

import (
	_ "luthierflow/docs"
	"luthierflow/internal/adapter/http/routes"
	"luthierflow/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           LuthierFlow API
// @version         1.0
// @description     Luthier workshop service orders (intake, board, deposits, photo extraction) backed by DynamoDB with a local SQLite cache.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run(config.Load())
}
