package handlers

import (
	"errors"
	"log"
	"net/http"

	request "credit_engine/internal/adapter/http/dto/request"
	response "credit_engine/internal/adapter/http/dto/response"
	"credit_engine/internal/domain/entities"
	"credit_engine/internal/usecase"
	"credit_engine/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)

// CreditDecisionHandler handles HTTP requests for credit decisions.

type CreditDecisionHandler struct {
	usecase usecase.ICreditDecisionUseCase
}

func NewCreditDecisionHandler(uc usecase.ICreditDecisionUseCase) *CreditDecisionHandler {
	return &CreditDecisionHandler{usecase: uc}
}

// CreateCreditDecision submits a proposal for analysis.
//
// @Summary      Submit a credit proposal for decision
// @Description  Runs every eligibility rule against the proposal under the applicable policy and persists the decision.
// @Tags         credit_decisions
// @Accept       json
// @Produce      json
// @Param        proposal  body      request.ProposalRequest  true  "Proposal payload"
// @Success      201       {object}  response.DecisionResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      500       {object}  pkg.HTTPError
// @Router       /credit_decisions [post]
func (h *CreditDecisionHandler) CreateCreditDecision(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[decision][handler] invalid payload err=%v", err)
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	decision, err := h.usecase.AnalyzeProposal(c.Request.Context(), payload.ToCommand())
	if err != nil {
		log.Printf("[decision][handler] analyze failed err=%v", err)
		appErr := mapCreditDecisionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[decision][handler] analyze success decision_id=%s status=%s", decision.ID, decision.Status)

	c.JSON(http.StatusCreated, response.FromDecision(decision))
}

// GetCreditDecision returns a decision by its id.
//
// @Summary      Get a credit decision by id
// @Tags         credit_decisions
// @Produce      json
// @Param        decision_id  path      string  true  "Decision id"
// @Success      200          {object}  response.DecisionResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /credit_decisions/{decision_id} [get]
func (h *CreditDecisionHandler) GetCreditDecision(c *gin.Context) {
	decisionID := c.Param("decision_id")

	decision, err := h.usecase.GetDecisionByID(c.Request.Context(), decisionID)
	if err != nil {
		log.Printf("[decision][handler] get failed decision_id=%s err=%v", decisionID, err)
		appErr := mapCreditDecisionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDecision(decision))
}

// GetCreditDecisionByProposal returns the decision for a proposal.
//
// @Summary      Get the credit decision for a proposal
// @Tags         credit_decisions
// @Produce      json
// @Param        proposal_id  path      string  true  "Proposal id"
// @Success      200          {object}  response.DecisionResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /credit_decisions/by-proposal/{proposal_id} [get]
func (h *CreditDecisionHandler) GetCreditDecisionByProposal(c *gin.Context) {
	proposalID := c.Param("proposal_id")

	decision, err := h.usecase.GetDecisionByProposalID(c.Request.Context(), proposalID)
	if err != nil {
		log.Printf("[decision][handler] get-by-proposal failed proposal_id=%s err=%v", proposalID, err)
		appErr := mapCreditDecisionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDecision(decision))
}

func mapCreditDecisionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidApplicant), errors.Is(err, entities.ErrInvalidProposal):
		return pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPolicyNotFound):
		return pkg.NewDomainErrorSimple("POLICY_NOT_FOUND", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDecisionID), errors.Is(err, usecase.ErrInvalidProposalID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDecisionNotFound):
		return pkg.NewDomainErrorSimple("DECISION_NOT_FOUND", "Decision not found", http.StatusNotFound)
	default:
		// Server faults stay opaque to clients; the cause is already logged.
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
