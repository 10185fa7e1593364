package assignment

import (
	"context"
	"time"

	"clinic-assignment/internal/models"
)

// Directory is the source of truth for which clinicians exist and are
// currently active. LookupBySpecialties returns active clinicians whose
// primary department or secondary specialties intersect the given set,
// plus active internal-medicine clinicians as fallback.
type Directory interface {
	LookupBySpecialties(ctx context.Context, specialties []string) ([]*models.Clinician, error)
}

// DataStore defines the collaborator counts and queue persistence the
// engine's callers rely on. The engine itself only reads the counts.
type DataStore interface {
	CountActiveQueueEntries(ctx context.Context, doctorID string) (int, error)
	CountSameDayAppointments(ctx context.Context, doctorID string, day time.Time) (int, error)
	SaveQueueEntry(ctx context.Context, entry *models.QueueEntry) (string, error)
}

// SequenceSource reserves day-scoped queue positions. Implementations
// must serialize concurrent callers.
type SequenceSource interface {
	NextSequenceNumber(ctx context.Context, day time.Time) (int, error)
}
