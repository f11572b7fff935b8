// internal/handlers/user.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niyorhq/niyor-server/internal/models"
	"github.com/niyorhq/niyor-server/internal/services"
	"github.com/niyorhq/niyor-server/internal/storage"
	"github.com/niyorhq/niyor-server/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// PATCH /api/users
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var req models.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	result, err := h.userService.UpsertUser(c.Request.Context(), &req)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.ValidationErrorResponse(c, verr.Violations)
		case errors.Is(err, storage.ErrDuplicate):
			utils.ConflictResponse(c, "A user with this email already exists")
		default:
			utils.InternalErrorResponse(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User saved!",
		"result":  result,
	})
}

// GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /api/users/:email
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.userService.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.NotFoundResponse(c, "User not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
