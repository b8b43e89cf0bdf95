package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wheatworks/millbook/internal/apperrors"
	portssvc "github.com/wheatworks/millbook/internal/core/ports/services"
	"github.com/wheatworks/millbook/internal/dto"
	"github.com/wheatworks/millbook/internal/middleware"
)

// recordHandler handles HTTP requests for ledger records.
type recordHandler struct {
	recordService portssvc.RecordSvcFacade
}

// newRecordHandler creates a new recordHandler.
func newRecordHandler(rs portssvc.RecordSvcFacade) *recordHandler {
	return &recordHandler{recordService: rs}
}

// registerRecordRoutes registers all record-related routes.
func registerRecordRoutes(rg *gin.RouterGroup, recordService portssvc.RecordSvcFacade) {
	h := newRecordHandler(recordService)

	records := rg.Group("/records")
	{
		records.POST("", h.createRecord)
		records.GET("", h.listRecords)
		records.GET("/search", h.searchRecords)
		records.GET("/revenue", h.getRevenueSummary)
		records.GET("/:recordID", h.getRecord)
		records.PUT("/:recordID", h.updateRecord)
		records.DELETE("/:recordID", h.deleteRecord)
	}
}

// createRecord godoc
// @Summary Create a ledger record
// @Description Records a milling transaction; price, rate, customer id, and payment status are derived server-side
// @Tags records
// @Accept  json
// @Produce  json
// @Param   record body dto.CreateRecordRequest true "Record details"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create record"
// @Security BearerAuth
// @Router /records [post]
func (h *recordHandler) createRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create record request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.recordService.CreateRecord(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Create record validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create record in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create record"})
		return
	}

	logger.Info("Record created",
		slog.String("record_id", record.RecordID),
		slog.Int64("customer_id", record.CustomerID),
	)
	c.JSON(http.StatusCreated, dto.ToRecordResponse(record))
}

// listRecords godoc
// @Summary List ledger records
// @Description Retrieves records ordered by creation time descending
// @Tags records
// @Produce  json
// @Param   limit query int false "Limit number of results" default(50)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListRecordsResponse
// @Failure 500 {object} map[string]string "Failed to list records"
// @Security BearerAuth
// @Router /records [get]
func (h *recordHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	records, err := h.recordService.ListRecords(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list records"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRecordsResponse(records))
}

// searchRecords godoc
// @Summary Search ledger records
// @Description Matches the customer name exactly (case-insensitive); a numeric term also matches the customer id
// @Tags records
// @Produce  json
// @Param   q query string true "Customer name or customer id"
// @Success 200 {object} dto.ListRecordsResponse
// @Failure 400 {object} map[string]string "Missing search term"
// @Failure 500 {object} map[string]string "Failed to search records"
// @Security BearerAuth
// @Router /records/search [get]
func (h *recordHandler) searchRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SearchRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search term 'q' is required"})
		return
	}

	records, err := h.recordService.SearchRecords(c.Request.Context(), params.Term)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to search records", slog.String("error", err.Error()), slog.String("term", params.Term))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search records"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRecordsResponse(records))
}

// getRecord godoc
// @Summary Get a ledger record
// @Description Retrieves a single record by its record id
// @Tags records
// @Produce  json
// @Param   recordID path string true "Record ID"
// @Success 200 {object} dto.RecordResponse
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to retrieve record"
// @Security BearerAuth
// @Router /records/{recordID} [get]
func (h *recordHandler) getRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID := c.Param("recordID")

	record, err := h.recordService.GetRecordByID(c.Request.Context(), recordID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		logger.Error("Failed to get record", slog.String("error", err.Error()), slog.String("record_id", recordID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve record"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

// updateRecord godoc
// @Summary Update a ledger record
// @Description Applies a patch; rate and total are always recomputed from the effective weight
// @Tags records
// @Accept  json
// @Produce  json
// @Param   recordID path string true "Record ID"
// @Param   record body dto.UpdateRecordRequest true "Fields to update"
// @Success 200 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to update record"
// @Security BearerAuth
// @Router /records/{recordID} [put]
func (h *recordHandler) updateRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID := c.Param("recordID")

	var req dto.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update record request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.recordService.UpdateRecord(c.Request.Context(), recordID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update record", slog.String("error", err.Error()), slog.String("record_id", recordID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update record"})
		}
		return
	}

	logger.Info("Record updated", slog.String("record_id", recordID))
	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

// deleteRecord godoc
// @Summary Delete a ledger record
// @Description Removes a record by its record id
// @Tags records
// @Produce  json
// @Param   recordID path string true "Record ID"
// @Success 204 "Record deleted"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to delete record"
// @Security BearerAuth
// @Router /records/{recordID} [delete]
func (h *recordHandler) deleteRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID := c.Param("recordID")

	if err := h.recordService.DeleteRecord(c.Request.Context(), recordID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		logger.Error("Failed to delete record", slog.String("error", err.Error()), slog.String("record_id", recordID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
		return
	}

	logger.Info("Record deleted", slog.String("record_id", recordID))
	c.Status(http.StatusNoContent)
}

// getRevenueSummary godoc
// @Summary Revenue summary
// @Description Aggregates total, paid, and pending revenue across all records
// @Tags records
// @Produce  json
// @Success 200 {object} dto.RevenueSummaryResponse
// @Failure 500 {object} map[string]string "Failed to summarize revenue"
// @Security BearerAuth
// @Router /records/revenue [get]
func (h *recordHandler) getRevenueSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.recordService.GetRevenueSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to summarize revenue", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize revenue"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRevenueSummaryResponse(summary))
}
