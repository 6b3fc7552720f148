package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/protected", AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAdminRequired_NoToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequired_InvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequired_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	signed := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": "abc",
		"admin":   true,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequired_MissingAdminClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	signed := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "abc",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRequired_ValidBearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	signed := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "abc",
		"admin":   true,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRequired_ValidCookieToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	signed := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "abc",
		"admin":   true,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: signed})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRequired_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	signed := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "abc",
		"admin":   true,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
