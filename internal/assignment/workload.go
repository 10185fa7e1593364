package assignment

import (
	"context"
	"log"
	"time"

	"clinic-assignment/internal/models"
)

const (
	// SentinelWorkload substitutes for both the workload score and the
	// wait estimate when a count query fails: a clinician whose load is
	// unknown must never be preferred.
	SentinelWorkload = 999

	queueWeight       = 2
	minutesPerPatient = 15
)

// WorkloadScorer reads collaborator counts at call time; it never
// caches a snapshot across requests.
type WorkloadScorer struct {
	db DataStore
}

func NewWorkloadScorer(db DataStore) *WorkloadScorer {
	return &WorkloadScorer{db: db}
}

// Score returns the clinician's workload snapshot, its scalar score and
// the estimated wait in minutes. A failed count query is recovered
// locally by returning the sentinel maximal workload.
func (s *WorkloadScorer) Score(ctx context.Context, doctorID string, day time.Time) (models.WorkloadSnapshot, int, int) {
	queueCount, err := s.db.CountActiveQueueEntries(ctx, doctorID)
	if err != nil {
		log.Printf("workload query failed for %s: %v", doctorID, err)
		return models.WorkloadSnapshot{}, SentinelWorkload, SentinelWorkload
	}

	apptCount, err := s.db.CountSameDayAppointments(ctx, doctorID, day)
	if err != nil {
		log.Printf("appointment count failed for %s: %v", doctorID, err)
		return models.WorkloadSnapshot{}, SentinelWorkload, SentinelWorkload
	}

	snapshot := models.WorkloadSnapshot{
		ActiveQueueCount:        queueCount,
		SameDayAppointmentCount: apptCount,
	}
	return snapshot, ScoreValue(snapshot), EstimateWaitMinutes(queueCount)
}

// ScoreValue weights queued patients twice scheduled appointments:
// queued patients are waiting right now.
func ScoreValue(snapshot models.WorkloadSnapshot) int {
	return queueWeight*snapshot.ActiveQueueCount + snapshot.SameDayAppointmentCount
}

// EstimateWaitMinutes assumes a fixed per-patient service time.
func EstimateWaitMinutes(activeQueueCount int) int {
	return minutesPerPatient * activeQueueCount
}
