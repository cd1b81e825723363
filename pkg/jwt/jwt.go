package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de token emitidos por la aplicación.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// TokenType distingue access de refresh para que el middleware rechace refresh
// tokens usados como credencial de API.
type Claims struct {
	jwt.RegisteredClaims
	AdminID   string `json:"admin_id"`
	Superuser bool   `json:"superuser"`
	TokenType string `json:"token_type"`
}

// Generate genera un access token JWT firmado (HS256) con adminID y el flag de superuser.
func Generate(secret, adminID string, superuser bool, issuer string, expMinutes int) (string, error) {
	return generate(secret, adminID, superuser, issuer, TokenTypeAccess, time.Duration(expMinutes)*time.Minute)
}

// GenerateRefresh genera un refresh token de larga vida. Solo sirve para
// obtener nuevos access tokens vía /api/auth/refresh.
func GenerateRefresh(secret, adminID string, superuser bool, issuer string, expHours int) (string, error) {
	return generate(secret, adminID, superuser, issuer, TokenTypeRefresh, time.Duration(expHours)*time.Hour)
}

func generate(secret, adminID string, superuser bool, issuer, tokenType string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		AdminID:   adminID,
		Superuser: superuser,
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token (firma, expiración) y devuelve sus claims.
// Acepta cualquier tipo de token; el caller decide si exige access o refresh.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// ParseAccess valida el token y exige que sea de tipo access.
func ParseAccess(secret, tokenString string) (*Claims, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, fmt.Errorf("se requiere un access token")
	}
	return claims, nil
}

// ParseRefresh valida el token y exige que sea de tipo refresh.
func ParseRefresh(secret, tokenString string) (*Claims, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, fmt.Errorf("se requiere un refresh token")
	}
	return claims, nil
}
