// File: handlers/bundle.go
package handlers

import (
	accountRepo "github.com/funabab/ilivercare-app/database/repository/account"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every route handler plus the repositories the
// middleware needs, so route registration takes a single argument.
type HandlerBundle struct {
	AccountRepo accountRepo.Repository

	// Auth endpoints.
	RegisterAccountHandler gin.HandlerFunc
	LoginHandler           gin.HandlerFunc
	VerifyEmailHandler     gin.HandlerFunc

	// Record endpoints.
	CreateRecordHandler gin.HandlerFunc
	ListRecordsHandler  gin.HandlerFunc
	GetRecordHandler    gin.HandlerFunc
	UpdateRecordHandler gin.HandlerFunc
	DeleteRecordHandler gin.HandlerFunc

	// Prediction endpoint.
	PredictRecordHandler gin.HandlerFunc
}
