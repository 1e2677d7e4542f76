package proposal

import "errors"

var (
	ErrProposalNotFound = errors.New("proposal not found")
	ErrCarpoolFull      = errors.New("carpool is full")
)
