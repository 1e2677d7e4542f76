package carpool

import "errors"

var (
	ErrCarpoolNotFound   = errors.New("carpool not found")
	ErrOrganiserNotFound = errors.New("organiser not found")
)
