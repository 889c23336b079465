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

// ClientIDHeader identifies the client profile the persisted state is scoped
// to. The browser sends it on every flow request.
const ClientIDHeader = "X-Client-Id"

const submittedPath = "/v1/calculator/submitted"

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errBrokenLink          = pkg.NewDomainErrorSimple("BROKEN_LINK", "The order link is invalid or truncated", http.StatusBadRequest)
)

// CalculatorHandler serves the quoting form and the result page the token
// redirect lands on.
type CalculatorHandler struct {
	flow usecase.IOrderFlowUseCase
}

func NewCalculatorHandler(flow usecase.IOrderFlowUseCase) *CalculatorHandler {
	return &CalculatorHandler{flow: flow}
}

// CreateQuote prices the form answers and returns the encoded order token
// together with the result-page path carrying it.
func (h *CalculatorHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	view, err := h.flow.CreateQuote(c.Request.Context(), payload.ResolveServiceType(), payload.ResolveFormData(), payload.ExistingToken)
	if err != nil {
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteView(view))
}

// GetResult decodes the token from the redirect URL. An already-submitted
// order is redirected to the submitted view with the token unchanged; a
// malformed token yields the broken-link state, never a crash.
func (h *CalculatorHandler) GetResult(c *gin.Context) {
	raw := c.Query("order")
	clientID := c.GetHeader(ClientIDHeader)

	view, err := h.flow.ResolveResult(c.Request.Context(), clientID, raw)
	if err != nil {
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if view.AlreadySubmitted {
		c.Redirect(http.StatusSeeOther, submittedPath+"?order="+raw)
		return
	}

	c.JSON(http.StatusOK, response.FromResultView(view, response.ResultStateOK))
}

// GetSubmitted serves the "already submitted" view for a token whose order
// went through the downstream sequence before.
func (h *CalculatorHandler) GetSubmitted(c *gin.Context) {
	raw := c.Query("order")

	view, err := h.flow.ResolveResult(c.Request.Context(), "", raw)
	if err != nil {
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromResultView(view, response.ResultStateSubmitted))
}

func mapFlowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidToken):
		return errBrokenLink
	case errors.Is(err, usecase.ErrInvalidServiceType), errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAlreadySubmitted):
		return pkg.NewDomainErrorSimple("ALREADY_SUBMITTED", "This order was already submitted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
