package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfcevallos/vetclinica-api/pkg/auth"
)

const (
	// HeaderAccessToken is the session header the frontend has always sent.
	HeaderAccessToken = "x-access-token"
	// ContextUsuario holds the *auth.Claims of the verified token.
	ContextUsuario = "usuario"
)

// VerifyToken gates a route on a valid session token. A missing header is a
// 403, anything wrong with the token itself is a 401.
func VerifyToken(tokens auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(HeaderAccessToken)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Acceso denegado. Token no proporcionado.",
			})
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Token inválido",
			})
			return
		}

		c.Set(ContextUsuario, claims)
		c.Next()
	}
}

// UsuarioFromContext returns the claims set by VerifyToken.
func UsuarioFromContext(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ContextUsuario)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
