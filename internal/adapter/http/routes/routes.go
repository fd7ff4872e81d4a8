package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "credit_engine/docs" // This will be auto-generated
	"credit_engine/internal/adapter/http/handlers"
	repository2 "credit_engine/internal/adapter/persistence/repository"
	"credit_engine/internal/engine"
	"credit_engine/internal/infrastructure/database"
	"credit_engine/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	decisionRepo := repository2.NewDecisionDynamoRepository(ddb)
	policyRepo := repository2.NewPolicyDynamoRepository(ddb)

	// The default policy must exist before the first request arrives. Seeding
	// is create-if-absent and never runs again during request handling.
	if err := database.SeedDefaultPolicy(context.Background(), policyRepo); err != nil {
		log.Fatalf("Failed to seed default policy: %v", err)
	}

	decisionEngine := engine.NewDecisionEngine(rulesFromEnv())
	decisionUseCase := usecase.NewCreditDecisionUseCase(proposalRepo, decisionRepo, policyRepo, decisionEngine)
	decisionHandler := handlers.NewCreditDecisionHandler(decisionUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCreditDecisionRoutes(v1, decisionHandler)
}

// rulesFromEnv builds the rule chain, letting operations adjust thresholds
// without a rebuild. Registration order is fixed; only thresholds move.
func rulesFromEnv() []engine.Rule {
	return engine.DefaultRules(
		getenvFloat("RULE_MIN_INCOME", engine.DefaultMinIncome),
		getenvFloat("RULE_MAX_COMMITMENT", engine.DefaultMaxCommitment),
		getenvInt("RULE_MIN_AGE", engine.DefaultMinAge),
		getenvInt("RULE_MAX_AGE", engine.DefaultMaxAge),
		getenvInt("RULE_MAX_INSTALLMENTS", engine.DefaultMaxInstallments),
	)
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[routes] ignoring %s=%q: %v", key, v, err)
		return def
	}
	return f
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[routes] ignoring %s=%q: %v", key, v, err)
		return def
	}
	return n
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
