package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/petshopsuite/petshop-api/internal/config"
)

// Chaves do contexto gin preenchidas pelo AuthMiddleware. Handlers leem
// via handlers.currentUserID / currentPetShopID.
const (
	ContextUserID    = "userID"
	ContextPetShopID = "petShopID"
	ContextUserRole  = "userRole"
)

func abortUnauthorized(c *gin.Context, code string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": code})
}

// AuthMiddleware valida o bearer token (HS256) e injeta usuário, pet shop
// e papel no contexto. Todo escopo /api passa por aqui; o token carrega o
// pet shop, então nenhum handler confia em ids vindos do corpo ou da URL.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		parts := strings.SplitN(raw, " ", 2)
		if raw == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header")
			return
		}

		token, err := jwt.Parse(
			parts[1],
			func(*jwt.Token) (interface{}, error) { return []byte(cfg.JWTSecret), nil },
			jwt.WithValidMethods([]string{"HS256"}),
		)
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid_token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid_token_claims")
			return
		}

		userID, okUser := claims["sub"].(float64)
		petShopID, okShop := claims["petShopId"].(float64)
		if !okUser || !okShop {
			abortUnauthorized(c, "invalid_token_payload")
			return
		}
		role, _ := claims["role"].(string)

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextPetShopID, uint(petShopID))
		c.Set(ContextUserRole, role)

		c.Next()
	}
}
