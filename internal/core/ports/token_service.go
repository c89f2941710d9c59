package ports

import (
	"time"

	"github.com/app2/products-catalog/internal/core/domain"
)

// TokenService issues and validates the signed, self-contained session
// tokens that carry all authentication state between requests.
type TokenService interface {
	// Issue produces a signed token for the account with issued-at = now
	// and the configured expiry window.
	Issue(id, login, role string) (token string, expiresAt time.Time, err error)
	// Validate verifies the signature first, then expiry, and returns the
	// embedded identity. Failures are one of domain.ErrTokenMalformed,
	// domain.ErrTokenSignatureInvalid or domain.ErrTokenExpired.
	Validate(token string) (domain.Identity, error)
}
