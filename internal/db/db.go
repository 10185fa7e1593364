package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type Clinician struct {
	ID          string
	FirstName   string
	LastName    string
	Department  string
	Specialties []string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type QueueEntry struct {
	ID             string
	PatientID      string
	DoctorID       string
	SequenceNumber int32
	Urgency        string
	SymptomText    string
	Status         string
	CreatedAt      time.Time
}

type Appointment struct {
	ID              string
	PatientID       string
	DoctorID        string
	AppointmentDate time.Time
	Status          string
	CreatedAt       time.Time
}

// Queries wraps the raw connection, sqlc-style.
type Queries struct {
	DB *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{DB: db}
}

func (q *Queries) ListClinicians(ctx context.Context) ([]Clinician, error) {
	rows, err := q.DB.QueryContext(ctx,
		"SELECT id, first_name, last_name, department, specialties, status, created_at, updated_at FROM clinicians")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Clinician
	for rows.Next() {
		var i Clinician
		if err := rows.Scan(&i.ID, &i.FirstName, &i.LastName, &i.Department,
			pq.Array(&i.Specialties), &i.Status, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (q *Queries) CreateClinician(ctx context.Context, arg Clinician) error {
	_, err := q.DB.ExecContext(ctx,
		"INSERT INTO clinicians (id, first_name, last_name, department, specialties, status) VALUES ($1, $2, $3, $4, $5, $6)",
		arg.ID, arg.FirstName, arg.LastName, arg.Department, pq.Array(arg.Specialties), arg.Status,
	)
	return err
}

func (q *Queries) CreateAppointment(ctx context.Context, arg Appointment) error {
	_, err := q.DB.ExecContext(ctx,
		"INSERT INTO appointments (id, patient_id, doctor_id, appointment_date, status) VALUES ($1, $2, $3, $4, $5)",
		arg.ID, arg.PatientID, arg.DoctorID, arg.AppointmentDate, arg.Status,
	)
	return err
}

func (q *Queries) ListWaitingQueueEntries(ctx context.Context, day time.Time) ([]QueueEntry, error) {
	rows, err := q.DB.QueryContext(ctx,
		"SELECT id, patient_id, doctor_id, sequence_number, urgency, symptom_text, status, created_at FROM queue_entries WHERE status = 'waiting' AND created_at::date = $1::date ORDER BY sequence_number",
		day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []QueueEntry
	for rows.Next() {
		var i QueueEntry
		if err := rows.Scan(&i.ID, &i.PatientID, &i.DoctorID, &i.SequenceNumber,
			&i.Urgency, &i.SymptomText, &i.Status, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
