package handler

import (
	carpooldomain "carpooling-go/internal/domain/carpool"
	proposaldomain "carpooling-go/internal/domain/proposal"
	userdomain "carpooling-go/internal/domain/user"
	"carpooling-go/pkg/logger"
)

type Handlers struct {
	Users     *userdomain.Service
	Carpools  *carpooldomain.Service
	Proposals *proposaldomain.Service

	pages *pages
	log   logger.Logger
}

func New(users *userdomain.Service, carpools *carpooldomain.Service, proposals *proposaldomain.Service, log logger.Logger) (*Handlers, error) {
	p, err := newPages()
	if err != nil {
		return nil, err
	}

	return &Handlers{
		Users:     users,
		Carpools:  carpools,
		Proposals: proposals,
		pages:     p,
		log:       log,
	}, nil
}
