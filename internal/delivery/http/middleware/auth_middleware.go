package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/auth"
)

// AuthMiddleware verifies the bearer token and resolves its subject against
// the users table. The numeric user id lands in the request context under
// domain.KeyUserID for ownership checks downstream.
//
// Note: a deactivated account still authenticates; deactivation only hides
// the user from public endpoints.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
				if cfg.JWTSecret == "" {
					return nil, fmt.Errorf("HS256 token received but JWT_SECRET is not configured")
				}
				return []byte(cfg.JWTSecret), nil
			}

			if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
				if jwksProvider == nil {
					return nil, fmt.Errorf("RS256 token received but AUTH_JWKS_URL is not configured")
				}
				return jwksProvider.KeyFunc(token)
			}

			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims")
			c.Abort()
			return
		}

		userID, err := subjectID(claims)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token subject")
			c.Abort()
			return
		}

		// Token may outlive the account; make sure the user still exists
		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found")
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)

		c.Next()
	}
}

// subjectID extracts the numeric user id from the sub claim, which some
// issuers encode as a string and others as a JSON number.
func subjectID(claims jwt.MapClaims) (int64, error) {
	switch sub := claims["sub"].(type) {
	case string:
		return strconv.ParseInt(sub, 10, 64)
	case float64:
		return int64(sub), nil
	default:
		return 0, fmt.Errorf("missing sub claim")
	}
}
