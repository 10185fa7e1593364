package assignment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"clinic-assignment/internal/models"
	"clinic-assignment/internal/triage"
)

// Engine routes an arriving patient to the most appropriate available
// clinician and reserves a stable position in the day's service queue.
type Engine struct {
	db         DataStore
	directory  Directory
	sequencer  SequenceSource
	classifier *triage.Classifier
	scorer     *WorkloadScorer
	now        func() time.Time
}

func NewEngine(db DataStore, directory Directory, sequencer SequenceSource) *Engine {
	return &Engine{
		db:         db,
		directory:  directory,
		sequencer:  sequencer,
		classifier: triage.NewClassifier(),
		scorer:     NewWorkloadScorer(db),
		now:        time.Now,
	}
}

// AssignDoctor is the engine's single externally visible operation.
// It never partially commits: if selection fails no sequence number is
// consumed, and if sequence reservation fails no record is produced.
// Retry policy belongs to the caller.
func (e *Engine) AssignDoctor(ctx context.Context, patientID, symptomText string) (*models.AssignmentRecord, error) {
	analysis := e.classifier.Classify(symptomText)
	now := e.now()

	candidates, err := e.directory.LookupBySpecialties(ctx, analysis.Specialties)
	if err != nil {
		return nil, fmt.Errorf("assignment failed: directory lookup: %w", err)
	}

	best, err := e.selectBest(ctx, candidates, analysis, now)
	if err != nil {
		return nil, fmt.Errorf("assignment failed: %w", err)
	}

	seq, err := e.sequencer.NextSequenceNumber(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("assignment failed: %w: %v", ErrSequenceReservation, err)
	}

	return &models.AssignmentRecord{
		ID:                   uuid.NewString(),
		PatientID:            patientID,
		DoctorID:             best.Clinician.ID,
		Analysis:             analysis,
		Workload:             best.Workload,
		EstimatedWaitMinutes: best.EstimatedWaitMinutes,
		Slot: models.QueueSlot{
			DaySequenceNumber: seq,
			AssignedAt:        now,
		},
		CreatedAt: now,
	}, nil
}

// Classify exposes the symptom analysis without running an assignment.
// Used by status endpoints and the check-in preview.
func (e *Engine) Classify(symptomText string) models.SymptomAnalysis {
	return e.classifier.Classify(symptomText)
}
