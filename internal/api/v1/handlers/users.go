package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"api-playground/internal/api/errors"
	"api-playground/internal/api/middleware"
	"api-playground/internal/api/v1/auth"
	"api-playground/internal/api/v1/dto"
)

// UserHandler serves the user endpoints
type UserHandler struct {
	users *auth.UserTable
}

// NewUserHandler creates a new user handler over a read-only table
func NewUserHandler(users *auth.UserTable) *UserHandler {
	return &UserHandler{users: users}
}

// Me handles GET /user/me
// Must be mounted behind auth.RequireBearer. The returned user is fabricated
// from the token; nothing is looked up or verified.
//
// @Summary Current user
// @Tags users
// @Produce json
// @Security OAuth2Password
// @Success 200 {object} dto.User
// @Failure 401 {object} errors.APIError "Missing bearer token"
// @Router /user/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, auth.CurrentUser(c))
}

// Get handles GET /users/:username
//
// @Summary Look up a user
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.User
// @Failure 404 {object} errors.APIError "Unknown user"
// @Router /users/{username} [get]
func (h *UserHandler) Get(c *gin.Context) {
	var path dto.UsernamePath
	if err := middleware.BindURI(c, &path); err != nil {
		middleware.HandleError(c, err)
		return
	}

	user, ok := h.users.Lookup(path.Username)
	if !ok {
		middleware.HandleError(c, errors.NewNotFoundError("user"))
		return
	}
	c.JSON(http.StatusOK, user)
}
