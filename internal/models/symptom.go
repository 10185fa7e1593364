package models

// SymptomRule maps a canonical symptom phrase to the specialties that
// handle it. The rule table is fixed reference data loaded at startup.
type SymptomRule struct {
	Phrase      string   `json:"phrase"`
	Specialties []string `json:"specialties"`
}

type UrgencyTier string

const (
	UrgencyEmergency UrgencyTier = "emergency"
	UrgencyHigh      UrgencyTier = "high"
	UrgencyMedium    UrgencyTier = "medium"
	UrgencyLow       UrgencyTier = "low"
)

// Rank orders tiers so emergency > high > medium > low.
func (u UrgencyTier) Rank() int {
	switch u {
	case UrgencyEmergency:
		return 3
	case UrgencyHigh:
		return 2
	case UrgencyMedium:
		return 1
	}
	return 0
}

const (
	ConfidenceHigh = "high"
	ConfidenceLow  = "low"
)

type SymptomAnalysis struct {
	Specialties    []string    `json:"specialties"`
	Urgency        UrgencyTier `json:"urgency"`
	MatchedPhrases []string    `json:"matched_phrases"`
	Confidence     string      `json:"confidence"`
}
