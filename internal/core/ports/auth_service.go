package ports

import "context"

// AuthService implements registration and the two login flows.
type AuthService interface {
	// Register creates a USER account. It never returns a token.
	Register(ctx context.Context, login, password, role string) error
	// Login exchanges credentials for a signed session token.
	Login(ctx context.Context, login, password string) (string, error)
	// AdminLogin is Login restricted to the reserved administrator login;
	// any other login is rejected before credentials are even looked up.
	AdminLogin(ctx context.Context, login, password string) (string, error)
}
