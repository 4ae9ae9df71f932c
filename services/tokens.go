package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/syedzainalii/noosh-tuft/config"
)

// TokenService issues and verifies the JWT pair used by the auth gateway.
type TokenService struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewTokenService(cfg config.Config) *TokenService {
	return &TokenService{
		secret:        []byte(cfg.SecretKey),
		accessExpiry:  cfg.AccessTokenExpiry,
		refreshExpiry: cfg.RefreshTokenExpiry,
	}
}

func (s *TokenService) sign(userID uint, typ string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": float64(userID),
		"typ": typ,
		"exp": time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *TokenService) AccessToken(userID uint) (string, error) {
	return s.sign(userID, "access", s.accessExpiry)
}

func (s *TokenService) RefreshToken(userID uint) (string, error) {
	return s.sign(userID, "refresh", s.refreshExpiry)
}

// ParseAccessToken returns the user ID carried by a valid access token.
func (s *TokenService) ParseAccessToken(token string) (uint, error) {
	return s.parse(token, "access")
}

// ParseRefreshToken returns the user ID carried by a valid refresh token.
func (s *TokenService) ParseRefreshToken(token string) (uint, error) {
	return s.parse(token, "refresh")
}

func (s *TokenService) parse(token, typ string) (uint, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, err
	}
	if claims["typ"] != typ {
		return 0, errors.New("invalid token type")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, errors.New("invalid subject claim")
	}
	return uint(sub), nil
}

// RandomToken returns a hex one-time token for email verification and
// password resets.
func RandomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}
	return hex.EncodeToString(b)
}
