package routes

import (
	"credit_engine/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCreditDecisions = "/credit_decisions"
)

func addCreditDecisionRoutes(rg *gin.RouterGroup, decisionHandler *handlers.CreditDecisionHandler) {
	decisions := rg.Group(PathCreditDecisions)
	{
		decisions.POST("", decisionHandler.CreateCreditDecision)
		decisions.GET("/by-proposal/:proposal_id", decisionHandler.GetCreditDecisionByProposal)
		decisions.GET("/:decision_id", decisionHandler.GetCreditDecision)
	}
}
