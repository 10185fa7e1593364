package assignment

import (
	"context"
	"time"

	"clinic-assignment/internal/models"
	"clinic-assignment/internal/triage"
)

const (
	primaryMatchScore   = 10
	secondaryMatchScore = 5
)

// urgencyMultiplier shrinks the effective load term for urgent cases so
// they jump the load-balancing preference.
func urgencyMultiplier(tier models.UrgencyTier) float64 {
	switch tier {
	case models.UrgencyEmergency:
		return 0.1
	case models.UrgencyHigh:
		return 0.5
	case models.UrgencyLow:
		return 1.5
	}
	return 1.0
}

// specialtyScore rewards primary department matches over secondary
// specialty matches. Secondary matches are additive and unbounded.
func specialtyScore(c *models.Clinician, specialties []string) int {
	wanted := make(map[string]bool, len(specialties))
	for _, tag := range specialties {
		wanted[tag] = true
	}

	score := 0
	if wanted[c.Department] {
		score += primaryMatchScore
	}
	for _, tag := range c.Specialties {
		if wanted[tag] {
			score += secondaryMatchScore
		}
	}
	return score
}

// eligible keeps active clinicians with any specialty overlap, plus
// active internal-medicine clinicians regardless of overlap. The
// fallback can mask a true no-qualified-clinician condition; preserved
// deliberately for compatibility with manual triage practice.
func eligible(c *models.Clinician, specialties []string) bool {
	if !c.IsActive() {
		return false
	}
	if c.Department == triage.DefaultSpecialty {
		return true
	}
	for _, tag := range specialties {
		if c.HasSpecialty(tag) {
			return true
		}
	}
	return false
}

// selectBest ranks the candidates and returns the strict minimum by
// final score, ties broken by clinician id ascending.
func (e *Engine) selectBest(ctx context.Context, candidates []*models.Clinician, analysis models.SymptomAnalysis, day time.Time) (*models.ScoredCandidate, error) {
	multiplier := urgencyMultiplier(analysis.Urgency)

	var best *models.ScoredCandidate
	for _, c := range candidates {
		if !eligible(c, analysis.Specialties) {
			continue
		}

		snapshot, workloadScore, waitMinutes := e.scorer.Score(ctx, c.ID, day)
		matchScore := specialtyScore(c, analysis.Specialties)
		final := (float64(workloadScore)+float64(waitMinutes)/minutesPerPatient)*multiplier - float64(matchScore)

		scored := &models.ScoredCandidate{
			Clinician:            c,
			Workload:             snapshot,
			WorkloadScore:        workloadScore,
			EstimatedWaitMinutes: waitMinutes,
			SpecialtyScore:       matchScore,
			FinalScore:           final,
		}

		if best == nil || final < best.FinalScore ||
			(final == best.FinalScore && c.ID < best.Clinician.ID) {
			best = scored
		}
	}

	if best == nil {
		return nil, ErrNoAvailableClinician
	}
	return best, nil
}
