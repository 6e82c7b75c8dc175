package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcevallos/vetclinica-api/pkg/auth"
)

func setupProtected(tokens auth.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protegido", VerifyToken(tokens), func(c *gin.Context) {
		claims, _ := UsuarioFromContext(c)
		c.JSON(http.StatusOK, gin.H{"usuario": claims.Nombre})
	})
	return r
}

func TestVerifyTokenMissing(t *testing.T) {
	r := setupProtected(auth.NewJWTService("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Acceso denegado. Token no proporcionado."}`, w.Body.String())
}

func TestVerifyTokenInvalid(t *testing.T) {
	r := setupProtected(auth.NewJWTService("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set(HeaderAccessToken, "garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Token inválido"}`, w.Body.String())
}

func TestVerifyTokenExpired(t *testing.T) {
	expired := auth.NewJWTService("secret", -time.Minute)
	token, err := expired.Generate(1, "admin", "administrador")
	require.NoError(t, err)

	r := setupProtected(auth.NewJWTService("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set(HeaderAccessToken, token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyTokenValid(t *testing.T) {
	tokens := auth.NewJWTService("secret", time.Hour)
	token, err := tokens.Generate(7, "Dra. Pérez", "veterinario")
	require.NoError(t, err)

	r := setupProtected(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set(HeaderAccessToken, token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"usuario":"Dra. Pérez"}`, w.Body.String())
}
