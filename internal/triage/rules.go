package triage

import "clinic-assignment/internal/models"

// DefaultSpecialty is assigned when no rule matches the complaint and
// also marks the clinicians that are always eligible as a fallback.
const DefaultSpecialty = "internal-medicine"

// defaultRules is the fixed phrase-to-specialty table. It is a slice so
// match order is stable across calls; never mutated after init.
var defaultRules = []models.SymptomRule{
	{Phrase: "chest pain", Specialties: []string{"cardiology", "emergency"}},
	{Phrase: "heart attack", Specialties: []string{"cardiology", "emergency"}},
	{Phrase: "palpitations", Specialties: []string{"cardiology"}},
	{Phrase: "high blood pressure", Specialties: []string{"cardiology"}},
	{Phrase: "shortness of breath", Specialties: []string{"pulmonology", "emergency"}},
	{Phrase: "difficulty breathing", Specialties: []string{"pulmonology", "emergency"}},
	{Phrase: "wheezing", Specialties: []string{"pulmonology"}},
	{Phrase: "cough", Specialties: []string{"pulmonology"}},
	{Phrase: "stroke", Specialties: []string{"neurology", "emergency"}},
	{Phrase: "seizure", Specialties: []string{"neurology", "emergency"}},
	{Phrase: "unconscious", Specialties: []string{"neurology", "emergency"}},
	{Phrase: "migraine", Specialties: []string{"neurology"}},
	{Phrase: "headache", Specialties: []string{"neurology"}},
	{Phrase: "dizziness", Specialties: []string{"neurology"}},
	{Phrase: "numbness", Specialties: []string{"neurology"}},
	{Phrase: "abdominal pain", Specialties: []string{"gastroenterology"}},
	{Phrase: "stomach ache", Specialties: []string{"gastroenterology"}},
	{Phrase: "nausea", Specialties: []string{"gastroenterology"}},
	{Phrase: "vomiting", Specialties: []string{"gastroenterology"}},
	{Phrase: "diarrhea", Specialties: []string{"gastroenterology"}},
	{Phrase: "back pain", Specialties: []string{"orthopedics"}},
	{Phrase: "joint pain", Specialties: []string{"orthopedics"}},
	{Phrase: "broken bone", Specialties: []string{"orthopedics"}},
	{Phrase: "fracture", Specialties: []string{"orthopedics"}},
	{Phrase: "sprain", Specialties: []string{"orthopedics"}},
	{Phrase: "rash", Specialties: []string{"dermatology"}},
	{Phrase: "itching", Specialties: []string{"dermatology"}},
	{Phrase: "sore throat", Specialties: []string{"ent"}},
	{Phrase: "ear pain", Specialties: []string{"ent"}},
	{Phrase: "sinus", Specialties: []string{"ent"}},
	{Phrase: "blurred vision", Specialties: []string{"ophthalmology"}},
	{Phrase: "eye pain", Specialties: []string{"ophthalmology"}},
	{Phrase: "painful urination", Specialties: []string{"urology"}},
	{Phrase: "blood in urine", Specialties: []string{"urology"}},
	{Phrase: "severe bleeding", Specialties: []string{"general-surgery", "emergency"}},
	{Phrase: "deep cut", Specialties: []string{"general-surgery"}},
	{Phrase: "anxiety", Specialties: []string{"psychiatry"}},
	{Phrase: "depression", Specialties: []string{"psychiatry"}},
	{Phrase: "fever", Specialties: []string{"internal-medicine"}},
	{Phrase: "fatigue", Specialties: []string{"internal-medicine"}},
}

type urgencyTriggers struct {
	tier    models.UrgencyTier
	phrases []string
}

// defaultTriggers lists one phrase set per tier; the most severe tier
// with a matching phrase wins. The phrase sets are disjoint across
// tiers.
var defaultTriggers = []urgencyTriggers{
	{tier: models.UrgencyEmergency, phrases: []string{
		"chest pain", "heart attack", "stroke", "seizure", "unconscious",
		"not breathing", "severe bleeding", "anaphylaxis", "overdose", "choking",
	}},
	{tier: models.UrgencyHigh, phrases: []string{
		"shortness of breath", "difficulty breathing", "severe pain",
		"high fever", "broken bone", "fracture", "deep cut", "head injury",
		"blood in urine",
	}},
	{tier: models.UrgencyMedium, phrases: []string{
		"fever", "vomiting", "diarrhea", "migraine", "dizziness",
		"infection", "persistent cough",
	}},
	{tier: models.UrgencyLow, phrases: nil},
}
