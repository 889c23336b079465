package main

import (
	_ "kalkulacka/docs"
	"kalkulacka/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Price Calculator API
// @version         1.0
// @description     Price calculator with token-carried quote state, idempotent lead submission and DynamoDB-backed client state.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
