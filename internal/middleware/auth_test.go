package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/hydrafit/hydra-api/internal/token"
)

func setupAuthTestRouter(t *testing.T) (*gin.Engine, *token.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := token.NewService("middleware-test-secret", "http://localhost:8080")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID})
	})
	return r, tokens
}

func TestRequireAuth_ValidToken(t *testing.T) {
	r, tokens := setupAuthTestRouter(t)

	tok, err := tokens.IssueIdentityToken("user-1", "jdoe", "jdoe@example.com", "J. Doe", "")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "user-1")
}

func TestRequireAuth_RejectsBeforeHandler(t *testing.T) {
	r, tokens := setupAuthTestRouter(t)

	tok, err := tokens.IssueIdentityToken("user-1", "jdoe", "jdoe@example.com", "J. Doe", "")
	require.NoError(t, err)

	headers := map[string]string{
		"missing header": "",
		"wrong scheme":   "Token abc",
		"lowercase":      "bearer " + tok,
		"garbage token":  "Bearer not-a-token",
	}
	for name, header := range headers {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code, name)
		require.Contains(t, w.Body.String(), `"success":false`, name)
	}
}
