package api

import (
	"github.com/eac85/gava-wrapped/internal/service"
)

// Services groups all business logic services used by the API server.
type Services struct {
	Wrapped *service.WrappedService
	Profile *service.ProfileService
}
