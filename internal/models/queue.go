package models

import "time"

// QueueSlot is a patient's position in the day's service order.
// Sequence numbers are unique per service day and strictly increasing
// in issuance order.
type QueueSlot struct {
	DaySequenceNumber int       `json:"day_sequence_number"`
	AssignedAt        time.Time `json:"assigned_at"`
}

type QueueEntry struct {
	ID             string      `json:"id"`
	PatientID      string      `json:"patient_id"`
	DoctorID       string      `json:"doctor_id"`
	SequenceNumber int         `json:"sequence_number"`
	Urgency        UrgencyTier `json:"urgency"`
	SymptomText    string      `json:"symptom_text"`
	Status         string      `json:"status"` // waiting, in_consultation, completed
	CreatedAt      time.Time   `json:"created_at"`
}
