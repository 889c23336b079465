package handlers

import (
	"errors"
	"net/http"

	request "kalkulacka/internal/adapter/http/dto/request"
	response "kalkulacka/internal/adapter/http/dto/response"
	"kalkulacka/internal/usecase"
	"kalkulacka/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)

// LeadHandler accepts the follow-up lead form and triggers the downstream
// submission sequence.
type LeadHandler struct {
	flow usecase.IOrderFlowUseCase
}

func NewLeadHandler(flow usecase.IOrderFlowUseCase) *LeadHandler {
	return &LeadHandler{flow: flow}
}

// SubmitLead runs the full submission: record upsert, merge, document
// render, contract creation, sinks, ledger mark. A duplicate submission is a
// normal branch answered with a conflict pointing at the submitted view.
func (h *LeadHandler) SubmitLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	clientID := payload.ResolveClientID(c.GetHeader(ClientIDHeader))
	view, err := h.flow.SubmitLead(c.Request.Context(), clientID, payload.Token, payload.ToLeadInput())
	if err != nil {
		if errors.Is(err, usecase.ErrAlreadySubmitted) {
			c.Header("Location", submittedPath+"?order="+payload.Token)
		}
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSubmissionView(view))
}
