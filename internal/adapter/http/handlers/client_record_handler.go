package handlers

import (
	"errors"
	"log"
	"net/http"

	request "kalkulacka/internal/adapter/http/dto/request"
	response "kalkulacka/internal/adapter/http/dto/response"
	"kalkulacka/internal/usecase"
	"kalkulacka/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRecordPayload = pkg.NewDomainErrorSimple("INVALID_RECORD_INPUT", "Invalid record payload", http.StatusBadRequest)

// ClientRecordHandler manages the persisted per-client order record and the
// admin/testing surface of the submission ledger.
type ClientRecordHandler struct {
	records usecase.IClientRecordUseCase
	ledger  usecase.ISubmissionLedger
}

func NewClientRecordHandler(records usecase.IClientRecordUseCase, ledger usecase.ISubmissionLedger) *ClientRecordHandler {
	return &ClientRecordHandler{records: records, ledger: ledger}
}

// UpsertRecord partially merges the payload into the stored record. Storage
// failures degrade to a stateless answer: the merged record comes back with
// persisted=false instead of an error, so the flow keeps working.
func (h *ClientRecordHandler) UpsertRecord(c *gin.Context) {
	var payload request.ClientRecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	clientID := c.Param("client_id")
	rec, err := h.records.Upsert(c.Request.Context(), clientID, payload.ToPatch())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidClientID) {
			appErr := mapRecordError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Printf("[record][upsert] storage unavailable client_id=%s err=%v", clientID, err)
		c.JSON(http.StatusOK, response.FromClientRecord(rec, false))
		return
	}

	c.JSON(http.StatusOK, response.FromClientRecord(rec, true))
}

func (h *ClientRecordHandler) GetRecord(c *gin.Context) {
	clientID := c.Param("client_id")
	rec, found, err := h.records.Get(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidClientID) {
			appErr := mapRecordError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Printf("[record][get] storage unavailable client_id=%s err=%v", clientID, err)
		c.JSON(http.StatusOK, response.FromClientRecord(rec, false))
		return
	}
	if !found {
		appErr := pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "No record stored for this client", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClientRecord(rec, true))
}

func (h *ClientRecordHandler) ClearRecord(c *gin.Context) {
	clientID := c.Param("client_id")
	if err := h.records.Clear(c.Request.Context(), clientID); err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearLedger resets the submission ledger for one client. Exposed for
// testing/administration only.
func (h *ClientRecordHandler) ClearLedger(c *gin.Context) {
	clientID := c.Param("client_id")
	if err := h.ledger.Clear(c.Request.Context(), clientID); err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClientRecordHandler) LedgerCount(c *gin.Context) {
	clientID := c.Param("client_id")
	count, err := h.ledger.Count(c.Request.Context(), clientID)
	if err != nil {
		log.Printf("[ledger][count] storage unavailable client_id=%s err=%v", clientID, err)
		c.JSON(http.StatusOK, gin.H{"count": 0, "stateless": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func mapRecordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT_ID", "Invalid client id", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
