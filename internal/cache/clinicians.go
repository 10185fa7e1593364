package cache

import (
	"context"
	"sync"

	"clinic-assignment/internal/models"
	"clinic-assignment/internal/triage"
)

// Loader is the source the cache refreshes from, typically the
// Postgres store.
type Loader interface {
	ListActiveClinicians(ctx context.Context) ([]*models.Clinician, error)
}

// ClinicianCache keeps a read-only snapshot of the active clinician
// directory so assignment requests do not hit the database per lookup.
// Refresh replaces the snapshot wholesale under the write lock.
type ClinicianCache struct {
	loader Loader

	mu         sync.RWMutex
	clinicians []*models.Clinician
}

func NewClinicianCache(loader Loader) *ClinicianCache {
	return &ClinicianCache{loader: loader}
}

func (c *ClinicianCache) Refresh(ctx context.Context) error {
	clinicians, err := c.loader.ListActiveClinicians(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.clinicians = clinicians
	c.mu.Unlock()
	return nil
}

// LookupBySpecialties filters the snapshot the same way the store's
// directory query does: specialty overlap plus the internal-medicine
// fallback.
func (c *ClinicianCache) LookupBySpecialties(ctx context.Context, specialties []string) ([]*models.Clinician, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []*models.Clinician
	for _, clin := range c.clinicians {
		if !clin.IsActive() {
			continue
		}
		if clin.Department == triage.DefaultSpecialty || overlaps(clin, specialties) {
			result = append(result, clin)
		}
	}
	return result, nil
}

func (c *ClinicianCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.clinicians)
}

func overlaps(c *models.Clinician, specialties []string) bool {
	for _, tag := range specialties {
		if c.HasSpecialty(tag) {
			return true
		}
	}
	return false
}
