package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/samber/do"
)

func Register(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*prometheus.Registry, error) {
		registry := prometheus.NewRegistry()

		registry.MustRegister(collectors.NewGoCollector())

		return registry, nil
	})

	do.Provide(injector, func(injector *do.Injector) (*Metrics, error) {
		registry, err := do.Invoke[*prometheus.Registry](injector)
		if err != nil {
			return nil, err
		}

		return New(registry)
	})
}
