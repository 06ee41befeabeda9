package config

import (
	"github.com/samber/do"
	"github.com/zhulik/tally/internal/core"
)

func Register(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (core.Config, error) {
		cfg, err := Parse()
		if err != nil {
			return nil, err
		}

		return cfg, nil
	})
}
