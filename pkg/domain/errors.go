package domain

import "errors"

// Ledger and profile errors. The webapi layer owns the mapping to HTTP
// status codes; services only wrap these with context.
var (
	// ErrAccountNotFound is returned when no account exists for the user.
	ErrAccountNotFound = errors.New("user profile not found")
	// ErrHoldingNotFound is returned when a sell references a symbol the
	// user does not hold.
	ErrHoldingNotFound = errors.New("portfolio entry not found")
	// ErrUserNotFound is returned when a user lookup fails.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidRequest is returned for missing or malformed trade fields.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrInsufficientFunds is returned when a buy exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient balance")
	// ErrInsufficientHoldings is returned when a sell exceeds the held quantity.
	ErrInsufficientHoldings = errors.New("not enough assets to sell")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAlreadyExists is returned when registering a username that is already taken.
	ErrAlreadyExists = errors.New("resource already exists")
)
