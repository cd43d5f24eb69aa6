package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/akhmetov-d/presentio/internal/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func identityRouter() (http.Handler, *domain.Identity) {
	var captured domain.Identity

	r := ginext.New("test")
	r.Use(Identity(testSecret))
	r.GET("/whoami", func(c *ginext.Context) {
		identity, _ := IdentityFrom(c)
		captured = identity
		c.JSON(http.StatusOK, ginext.H{"id": identity.ID})
	})

	return r, &captured
}

func TestIdentity_ValidToken(t *testing.T) {
	r, captured := identityRouter()

	token := signToken(t, jwt.MapClaims{
		"sub":   "u1",
		"role":  "student",
		"email": "Alice@Uni.edu",
		"name":  "Alice",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", captured.ID)
	assert.Equal(t, domain.RoleStudent, captured.Role)
	assert.Equal(t, "alice@uni.edu", captured.Email)
	assert.Equal(t, "Alice", captured.Name)
}

func TestIdentity_MissingHeader(t *testing.T) {
	r, _ := identityRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIdentity_WrongSecret(t *testing.T) {
	r, _ := identityRouter()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1", "email": "alice@uni.edu",
	})
	signed, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIdentity_IncompleteClaims(t *testing.T) {
	r, _ := identityRouter()

	token := signToken(t, jwt.MapClaims{"sub": "u1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
