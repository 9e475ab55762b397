// File: handlers/record.go
package handlers

import (
	"net/http"

	"github.com/funabab/ilivercare-app/apperr"
	"github.com/funabab/ilivercare-app/schemas"
	"github.com/funabab/ilivercare-app/services/record"
	"github.com/funabab/ilivercare-app/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecordHandler exposes liver-record CRUD over HTTP.
type RecordHandler struct {
	RecordService record.RecordService
}

func NewRecordHandler(svc record.RecordService) *RecordHandler {
	return &RecordHandler{RecordService: svc}
}

// CreateRecordHandler handles POST /api/records.
func (h *RecordHandler) CreateRecordHandler(c *gin.Context) {
	var req schemas.CreateLiverRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Debug("CreateRecord: malformed payload", zap.Error(err))
		respondError(c, apperr.New(apperr.CodeInvalidArgument, "Invalid input"))
		return
	}

	id, err := h.RecordService.Create(c.Request.Context(), currentAccountID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListRecordsHandler handles GET /api/records.
func (h *RecordHandler) ListRecordsHandler(c *gin.Context) {
	records, err := h.RecordService.List(c.Request.Context(), currentAccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// GetRecordHandler handles GET /api/records/:id.
func (h *RecordHandler) GetRecordHandler(c *gin.Context) {
	rec, err := h.RecordService.Get(c.Request.Context(), currentAccountID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// UpdateRecordHandler handles PUT /api/records/:id.
func (h *RecordHandler) UpdateRecordHandler(c *gin.Context) {
	var req schemas.UpdateLiverRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Debug("UpdateRecord: malformed payload", zap.Error(err))
		respondError(c, apperr.New(apperr.CodeInvalidArgument, "Invalid input"))
		return
	}

	rec, err := h.RecordService.Update(c.Request.Context(), currentAccountID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteRecordHandler handles DELETE /api/records/:id.
func (h *RecordHandler) DeleteRecordHandler(c *gin.Context) {
	if err := h.RecordService.Delete(c.Request.Context(), currentAccountID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Record deleted"})
}
