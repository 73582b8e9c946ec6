package workers

import "context"

// System defines the public contract for worker registration operations.
type System interface {
	Handler() *Handler

	// Signup hashes the password and registers the worker. A previously
	// registered Aadhaar number yields ErrDuplicate.
	Signup(ctx context.Context, cmd SignupCommand) (*Worker, error)

	// Login verifies credentials against the stored hash. Unknown workers
	// and wrong passwords both yield ErrInvalidCredentials.
	Login(ctx context.Context, cmd LoginCommand) (*Worker, error)
}
