package commands

import (
	"github.com/boc321/momentum/pkg/advice"
	"github.com/boc321/momentum/pkg/app"
	"github.com/boc321/momentum/pkg/store"
)

// newService wires the persistence layer and the optional advice generator
// from the user's config. The generator stays nil when no endpoint is set.
func newService() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}

	svc := &app.Service{Persistence: p}
	if cfg.AdviceURL() != "" {
		gen, err := advice.NewHTTPGenerator(cfg.AdviceURL(), cfg.AdviceKey())
		if err != nil {
			return nil, err
		}
		svc.Generator = gen
	}
	return svc, nil
}
