package identity

import (
	"github.com/samber/do"
	"github.com/zhulik/tally/internal/core"
)

func Register(injector *do.Injector) {
	do.Provide(injector, func(injector *do.Injector) (core.IdentitySource, error) {
		config, err := do.Invoke[core.Config](injector)
		if err != nil {
			return nil, err
		}

		return NewHeaderSource(config.IdentityHeader()), nil
	})
}
