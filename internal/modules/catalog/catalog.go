package catalog

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("service not found in catalog")

// Catalog is an immutable registry of fare models keyed by service id.
// Construct one with New at process start and pass it down explicitly;
// nothing in the engine reads it as ambient global state.
type Catalog struct {
	models []FareModel
	byID   map[string]FareModel
}

// New validates and indexes the given models. It rejects duplicate service
// ids and models without at least one vehicle category.
func New(models []FareModel) (*Catalog, error) {
	byID := make(map[string]FareModel, len(models))
	for _, m := range models {
		if m.ServiceID == "" {
			return nil, fmt.Errorf("catalog: model %q has empty service id", m.Name)
		}
		if _, dup := byID[m.ServiceID]; dup {
			return nil, fmt.Errorf("catalog: duplicate service id %q", m.ServiceID)
		}
		if len(m.VehicleTypes) == 0 {
			return nil, fmt.Errorf("catalog: service %q has no vehicle categories", m.ServiceID)
		}
		if m.MarginOfError <= 0 || m.MarginOfError > 1 {
			return nil, fmt.Errorf("catalog: service %q margin of error %v out of (0,1]", m.ServiceID, m.MarginOfError)
		}
		for _, v := range m.VehicleTypes {
			if v.Multiplier <= 0 {
				return nil, fmt.Errorf("catalog: service %q vehicle %q has non-positive multiplier", m.ServiceID, v.Type)
			}
		}
		byID[m.ServiceID] = m
	}
	out := make([]FareModel, len(models))
	copy(out, models)
	return &Catalog{models: out, byID: byID}, nil
}

// All returns every model in declaration order.
func (c *Catalog) All() []FareModel {
	out := make([]FareModel, len(c.models))
	copy(out, c.models)
	return out
}

// ByID looks up one model. Returns ErrNotFound for unknown ids.
func (c *Catalog) ByID(serviceID string) (FareModel, error) {
	m, ok := c.byID[serviceID]
	if !ok {
		return FareModel{}, fmt.Errorf("%w: %s", ErrNotFound, serviceID)
	}
	return m, nil
}
