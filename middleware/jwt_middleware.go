// middleware/jwt_middleware.go
package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HSouheill/client_desk/logger"
	"github.com/HSouheill/client_desk/models"
	"github.com/HSouheill/client_desk/repositories"
)

// TokenCookie is the httpOnly cookie carrying the session token.
const TokenCookie = "token"

// JwtCustomClaims for JWT token. Id holds the session id used for revocation.
type JwtCustomClaims struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// TokenIssuer signs session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue generates a signed token for user and returns its expiry.
func (t *TokenIssuer) Issue(user *models.User) (string, time.Time, error) {
	now := t.now()
	expires := now.Add(t.ttl)
	claims := &JwtCustomClaims{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: expires.Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expires, nil
}

// JWTMiddleware accepts the token from the Authorization header or the session
// cookie and rejects tokens that were signed out.
func JWTMiddleware(secret string, sessions repositories.SessionStore) echo.MiddlewareFunc {
	parse := middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey:  []byte(secret),
		Claims:      &JwtCustomClaims{},
		TokenLookup: "header:" + echo.HeaderAuthorization + ",cookie:" + TokenCookie,
		AuthScheme:  "Bearer",
		ErrorHandler: func(err error) error {
			logger.Component("auth").Debug().Err(err).Msg("jwt rejected")
			return echo.NewHTTPError(http.StatusUnauthorized, "Please provide valid credentials")
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return parse(func(c echo.Context) error {
			claims := GetUserFromToken(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Please provide valid credentials")
			}

			revoked, err := sessions.IsRevoked(c.Request().Context(), claims.Id)
			if err != nil {
				logger.Component("auth").Error().Err(err).Msg("session revocation lookup failed")
				return echo.NewHTTPError(http.StatusServiceUnavailable, "Session store unavailable")
			}
			if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token has been invalidated")
			}

			c.Set("userId", claims.UserID)
			c.Set("role", claims.Role)
			return next(c)
		})
	}
}

// GetUserFromToken extracts the claims placed in the context by JWTMiddleware
func GetUserFromToken(c echo.Context) *JwtCustomClaims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok {
		return nil
	}
	return claims
}

// CurrentUser rebuilds the signed-in account from the token claims.
func CurrentUser(c echo.Context) (*models.User, error) {
	claims := GetUserFromToken(c)
	if claims == nil {
		return nil, errors.New("invalid token")
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, errors.New("invalid user ID in token")
	}
	return &models.User{
		ID:    id,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

// ExtractRole safely extracts the account role from the context
func ExtractRole(c echo.Context) string {
	if role, ok := c.Get("role").(string); ok && role != "" {
		return role
	}
	if claims := GetUserFromToken(c); claims != nil {
		return claims.Role
	}
	return ""
}
