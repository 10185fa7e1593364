package triage

import (
	"strings"

	"clinic-assignment/internal/models"
)

// Classifier maps free-text complaint input to a set of specialties and
// an urgency tier. It is pure and safe for concurrent use: the rule
// table and trigger lists are read-only after construction.
type Classifier struct {
	rules    []models.SymptomRule
	triggers []urgencyTriggers
}

func NewClassifier() *Classifier {
	return &Classifier{
		rules:    defaultRules,
		triggers: defaultTriggers,
	}
}

// Classify never fails; empty or unmatched text falls back to the
// default specialty with low confidence.
func (c *Classifier) Classify(text string) models.SymptomAnalysis {
	lower := strings.ToLower(text)

	var matched []string
	var specialties []string
	seen := make(map[string]bool)

	for _, rule := range c.rules {
		if !strings.Contains(lower, rule.Phrase) {
			continue
		}
		matched = append(matched, rule.Phrase)
		for _, tag := range rule.Specialties {
			if !seen[tag] {
				seen[tag] = true
				specialties = append(specialties, tag)
			}
		}
	}

	// The most severe matching tier wins, independent of trigger
	// table order.
	urgency := models.UrgencyLow
	for _, tg := range c.triggers {
		if tg.tier.Rank() > urgency.Rank() && containsAny(lower, tg.phrases) {
			urgency = tg.tier
		}
	}

	confidence := models.ConfidenceLow
	if len(matched) > 0 {
		confidence = models.ConfidenceHigh
	}

	if len(specialties) == 0 {
		specialties = []string{DefaultSpecialty}
	}

	return models.SymptomAnalysis{
		Specialties:    specialties,
		Urgency:        urgency,
		MatchedPhrases: matched,
		Confidence:     confidence,
	}
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
