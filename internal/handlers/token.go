// internal/handlers/token.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niyorhq/niyor-server/internal/models"
	"github.com/niyorhq/niyor-server/internal/services"
	"github.com/niyorhq/niyor-server/internal/utils"
)

type TokenHandler struct {
	tokenService *services.TokenService
}

func NewTokenHandler(tokenService *services.TokenService) *TokenHandler {
	return &TokenHandler{tokenService: tokenService}
}

// POST /jwt
func (h *TokenHandler) IssueToken(c *gin.Context) {
	var req services.IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	token, err := h.tokenService.IssueToken(c.Request.Context(), &req)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.ValidationErrorResponse(c, verr.Violations)
		case errors.Is(err, services.ErrIdentityMismatch):
			utils.UnauthorizedResponse(c, "Identity could not be verified")
		default:
			utils.InternalErrorResponse(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
