package infrastructure

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"task-service/internal/apperrors"
)

// TokenLifetime is how long an issued token stays valid.
const TokenLifetime = 5 * time.Hour

// JWTService issues and verifies HS256 bearer tokens carrying the
// owning user's id. Verification is pure: it only parses and checks
// the signature and expiry against the configured secret.
type JWTService struct {
	secretKey []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secretKey: []byte(secret)}
}

// GenerateToken signs a token for userID expiring TokenLifetime from now.
func (j *JWTService) GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"jti":    uuid.NewString(),
		"exp":    time.Now().Add(TokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// VerifyToken returns the userId claim of a valid token, or
// apperrors.ErrInvalidToken when the token is malformed, signed with a
// different key or method, or expired.
func (j *JWTService) VerifyToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secretKey, nil
	})
	if err != nil || !token.Valid {
		return 0, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, apperrors.ErrInvalidToken
	}

	// JSON numbers decode as float64.
	userID, ok := claims["userId"].(float64)
	if !ok || userID < 1 {
		return 0, apperrors.ErrInvalidToken
	}

	return uint(userID), nil
}

// TokenID extracts the jti claim without verifying the signature. Used
// only for cache bookkeeping, never for authentication decisions.
func TokenID(tokenString string) string {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	jti, _ := claims["jti"].(string)
	return jti
}
