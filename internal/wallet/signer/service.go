package signer

type service struct{}

// NewService creates a new SignerService
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService() (Service, error) {
	return &service{}, nil
}
