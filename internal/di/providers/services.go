package providers

import (
	"github.com/samber/do/v2"

	"github.com/eac85/gava-wrapped/internal/logger"
	"github.com/eac85/gava-wrapped/internal/service"
	"github.com/eac85/gava-wrapped/internal/validation"
)

// ProvideProfileService provides the profile service.
func ProvideProfileService(i do.Injector) (*service.ProfileService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewProfileService(storeHandle.Store, v, log), nil
}

// ProvideWrappedService provides the wrapped report service.
func ProvideWrappedService(i do.Injector) (*service.WrappedService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewWrappedService(storeHandle.Store, v, log), nil
}
