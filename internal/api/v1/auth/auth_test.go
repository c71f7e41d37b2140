package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultUsers(t *testing.T) {
	users := DefaultUsers()

	john, ok := users.Lookup("johndoe")
	require.True(t, ok)
	assert.Equal(t, "John Doe", *john.FullName)
	assert.Equal(t, "johndoe@example.com", *john.Email)
	assert.False(t, *john.Disabled)

	alice, ok := users.Lookup("alice")
	require.True(t, ok)
	assert.True(t, *alice.Disabled)

	_, ok = users.Lookup("mallory")
	assert.False(t, ok)
}

func TestUserTable_LookupReturnsCopies(t *testing.T) {
	users := DefaultUsers()

	john, _ := users.Lookup("johndoe")
	*john.FullName = "Someone Else"
	*john.Disabled = true

	again, _ := users.Lookup("johndoe")
	assert.Equal(t, "John Doe", *again.FullName)
	assert.False(t, *again.Disabled)
}

func TestUserInDB_HidesPassword(t *testing.T) {
	row := UserInDB{HashedPassword: "fakehashedsecret"}
	row.Username = "johndoe"

	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "fakehashedsecret")
}

func TestDecodeToken(t *testing.T) {
	user := DecodeToken("abc")
	assert.Equal(t, "abcfakedecoded", user.Username)
	assert.Equal(t, "john@examplemail.com", *user.Email)
	assert.Equal(t, "John Doe", *user.FullName)
	assert.Nil(t, user.Disabled)

	// deterministic and independent of the user table
	assert.Equal(t, user, DecodeToken("abc"))
	assert.Equal(t, "johndoefakedecoded", DecodeToken("johndoe").Username)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"BEARER  spaced ", "spaced", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"Bearer   ", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			token, ok := bearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestRequireBearer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", RequireBearer(), func(c *gin.Context) {
		c.JSON(http.StatusOK, CurrentUser(c))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	assert.Contains(t, rec.Body.String(), `"kind":"unauthorized"`)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"secretfakedecoded"`)
}
