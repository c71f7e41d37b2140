package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"api-playground/internal/api/errors"
	"api-playground/internal/api/middleware"
	"api-playground/internal/api/v1/dto"
)

const tokenKey = "bearer_token"

// RequireBearer extracts the token of an "Authorization: Bearer <token>" header.
// Requests without one are rejected with 401 and a Bearer challenge.
// The token itself is never verified.
func RequireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Header("WWW-Authenticate", "Bearer")
			middleware.HandleError(c, errors.NewUnauthorizedError("Not authenticated"))
			return
		}
		c.Set(tokenKey, token)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Token returns the raw bearer token stored by RequireBearer
func Token(c *gin.Context) string {
	return c.GetString(tokenKey)
}

// DecodeToken fabricates a user from the raw token string.
// This is a placeholder: nothing is verified and the user table is not consulted.
func DecodeToken(token string) dto.User {
	return dto.User{
		Username: token + "fakedecoded",
		Email:    strPtr("john@examplemail.com"),
		FullName: strPtr("John Doe"),
	}
}

// CurrentUser decodes the bearer token of the request
func CurrentUser(c *gin.Context) dto.User {
	return DecodeToken(Token(c))
}
