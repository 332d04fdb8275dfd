package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ==================== JWT configuration ====================

// JWTConfig holds signing parameters for issued tokens.
type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Issuer          string
}

// DefaultJWTConfig returns development defaults; production overrides the
// secret from the environment.
func DefaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		SecretKey:       "trustcam-secret-key-change-in-production",
		AccessTokenTTL:  2 * time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
		Issuer:          "trustcam",
	}
}

var jwtConfig = DefaultJWTConfig()

// SetJWTConfig installs the config used by token generation and parsing.
func SetJWTConfig(cfg *JWTConfig) {
	jwtConfig = cfg
}

// ==================== Claims ====================

// UserClaims are the claims carried by access and refresh tokens.
type UserClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// ==================== Token generation ====================

// GenerateAccessToken signs a short-lived access token for the user.
func GenerateAccessToken(userID int64, username string) (string, error) {
	return generateToken(userID, username, "access", jwtConfig.AccessTokenTTL)
}

// GenerateRefreshToken signs a long-lived refresh token for the user.
func GenerateRefreshToken(userID int64, username string) (string, error) {
	return generateToken(userID, username, "refresh", jwtConfig.RefreshTokenTTL)
}

func generateToken(userID int64, username, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtConfig.Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtConfig.SecretKey))
}

// ==================== Token parsing ====================

// ParseToken validates the token signature and returns its claims.
func ParseToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(jwtConfig.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// ==================== Gin middleware ====================

// Context keys.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
)

// RequireAuth rejects requests without a valid Bearer access token.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := claimsFromHeader(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": err.Error(),
			})
			c.Abort()
			return
		}
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUsername, claims.Username)
		c.Next()
	}
}

// OptionalAuth injects the user when a valid token is present but never
// aborts; handlers that need the structured "please sign in" payload gate
// themselves via CurrentUserID.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := claimsFromHeader(c); err == nil {
			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyUsername, claims.Username)
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id, if any.
func CurrentUserID(c *gin.Context) (int64, bool) {
	value, ok := c.Get(ContextKeyUserID)
	if !ok {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}

func claimsFromHeader(c *gin.Context) (*UserClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errors.New("missing credentials")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errors.New("authorization header must be Bearer {token}")
	}
	claims, err := ParseToken(parts[1])
	if err != nil {
		return nil, errors.New("token invalid or expired")
	}
	if claims.Subject != "access" {
		return nil, errors.New("wrong token type")
	}
	return claims, nil
}
