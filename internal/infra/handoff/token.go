package handoff

import (
	"time"

	"luxe-escape/internal/domain/booking"
	"luxe-escape/internal/pkg/config"
	"luxe-escape/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errs.New("invalid handoff token")

type draftClaims struct {
	Draft booking.Draft `json:"draft"`
	jwt.RegisteredClaims
}

// Signer carries the confirmed reservation draft across the navigation
// boundary from the booking screen to the checkout screen as an opaque,
// tamper-evident payload. The token is short-lived; checkout treats a
// missing or expired token as "no handoff" and falls back to the default
// booking rather than erroring.
type Signer struct {
	cfg config.HandoffConfig
}

func NewSigner(cfg config.HandoffConfig) *Signer {
	return &Signer{cfg: cfg}
}

func (s *Signer) Sign(draft booking.Draft, now time.Time) (string, error) {
	claims := draftClaims{
		Draft: draft,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", errs.Wrap(err, "failed to sign handoff token")
	}
	return signed, nil
}

func (s *Signer) Parse(tokenString string) (booking.Draft, error) {
	var claims draftClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return booking.Draft{}, errs.Mark(err, ErrInvalidToken)
	}
	return claims.Draft, nil
}
