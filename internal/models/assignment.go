package models

import "time"

// WorkloadSnapshot holds the two collaborator counts for one clinician,
// valid only at the instant it was read.
type WorkloadSnapshot struct {
	ActiveQueueCount        int `json:"active_queue_count"`
	SameDayAppointmentCount int `json:"same_day_appointment_count"`
}

// ScoredCandidate is the per-request scoring result for one clinician.
// Lower FinalScore is better.
type ScoredCandidate struct {
	Clinician            *Clinician       `json:"clinician"`
	Workload             WorkloadSnapshot `json:"workload"`
	WorkloadScore        int              `json:"workload_score"`
	EstimatedWaitMinutes int              `json:"estimated_wait_minutes"`
	SpecialtyScore       int              `json:"specialty_score"`
	FinalScore           float64          `json:"final_score"`
}

// AssignmentRecord is the audit output of a successful assignment.
// Immutable after creation; storage is owned by the caller.
type AssignmentRecord struct {
	ID                   string           `json:"id"`
	PatientID            string           `json:"patient_id"`
	DoctorID             string           `json:"doctor_id"`
	Analysis             SymptomAnalysis  `json:"analysis"`
	Workload             WorkloadSnapshot `json:"workload"`
	EstimatedWaitMinutes int              `json:"estimated_wait_minutes"`
	Slot                 QueueSlot        `json:"slot"`
	CreatedAt            time.Time        `json:"created_at"`
}
