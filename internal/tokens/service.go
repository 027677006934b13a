package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
)

// Service issues and verifies the signed, time-limited identity assertions
// the API hands out on POST /jwt. Verification is stateless per request:
// no sessions, no revocation list.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs an HS256 token carrying the email claim, valid for the
// configured TTL.
func (s *Service) Issue(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse validates the signature and expiry and returns the email claim.
func (s *Service) Parse(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", pkgErrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", pkgErrors.ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", pkgErrors.ErrInvalidToken
	}

	return email, nil
}
