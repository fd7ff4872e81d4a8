package main

import (
	_ "credit_engine/docs"
	"credit_engine/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Credit Engine API
// @version         1.0
// @description     Credit decision engine (proposals + policies + rules) backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
