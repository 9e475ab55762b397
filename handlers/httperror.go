// File: handlers/httperror.go
package handlers

import (
	"net/http"

	"github.com/funabab/ilivercare-app/apperr"
	"github.com/funabab/ilivercare-app/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// httpStatus maps every taxonomy code to its HTTP status. This is the single
// place service errors become transport errors.
func httpStatus(code apperr.Code) int {
	switch code {
	case apperr.CodeInvalidArgument:
		return http.StatusBadRequest
	case apperr.CodeUnauthenticated:
		return http.StatusUnauthorized
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodeAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError re-maps any error to the fixed taxonomy and writes the JSON
// error body. Internal causes are logged here and never serialized.
func respondError(c *gin.Context, err error) {
	ae := apperr.From(err)
	if ae.Code == apperr.CodeInternal {
		utils.GetLogger().Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}

	body := gin.H{
		"error": ae.Message,
		"code":  string(ae.Code),
	}
	if len(ae.Fields) > 0 {
		body["fields"] = ae.Fields
	}
	c.JSON(httpStatus(ae.Code), body)
}

// currentAccountID returns the authenticated account id set by the auth
// middleware, or "" when the request is unauthenticated.
func currentAccountID(c *gin.Context) string {
	id, ok := c.Get("accountID")
	if !ok {
		return ""
	}
	idStr, _ := id.(string)
	return idStr
}
