package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

const (
	ContextUserID     = "userID"
	ContextBusinessID = "businessID"
	ContextUserRole   = "userRole"
)

// Claims issued by the hosted auth platform.
type Claims struct {
	BusinessID uint   `json:"businessId"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

func AuthMiddleware(cfg config.AuthConfig) gin.HandlerFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithExpirationRequired(),
	)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "cabeçalho Authorization ausente")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "use o formato Bearer <token>")
			c.Abort()
			return
		}

		var claims Claims
		token, err := parser.ParseWithClaims(parts[1], &claims, func(*jwt.Token) (any, error) {
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "token inválido ou expirado")
			c.Abort()
			return
		}

		userID, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil || userID == 0 || claims.BusinessID == 0 {
			httperr.Unauthorized(c, "invalid_token_payload", "token sem usuário ou estabelecimento")
			c.Abort()
			return
		}

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextBusinessID, claims.BusinessID)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

func UserID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}

func BusinessID(c *gin.Context) uint {
	return c.GetUint(ContextBusinessID)
}
