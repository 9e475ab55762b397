// File: handlers/prediction.go
package handlers

import (
	"net/http"

	"github.com/funabab/ilivercare-app/apperr"
	"github.com/funabab/ilivercare-app/schemas"
	"github.com/funabab/ilivercare-app/services/prediction"
	"github.com/funabab/ilivercare-app/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PredictionHandler exposes the prediction callable.
type PredictionHandler struct {
	PredictionService prediction.PredictionService
}

func NewPredictionHandler(svc prediction.PredictionService) *PredictionHandler {
	return &PredictionHandler{PredictionService: svc}
}

// PredictRecordHandler handles POST /api/records/predict.
func (h *PredictionHandler) PredictRecordHandler(c *gin.Context) {
	var req schemas.PredictLiverRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Debug("PredictRecord: malformed payload", zap.Error(err))
		respondError(c, apperr.New(apperr.CodeInvalidArgument, "Invalid input"))
		return
	}

	if _, err := h.PredictionService.Predict(c.Request.Context(), currentAccountID(c), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Prediction updated successful",
	})
}
