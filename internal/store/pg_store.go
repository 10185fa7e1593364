package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"clinic-assignment/internal/db"
	"clinic-assignment/internal/models"
	"clinic-assignment/internal/queue"
	"clinic-assignment/internal/triage"
)

// PostgresStore backs the engine's collaborator interfaces with the
// clinic database. It also owns the durable day counter, so it
// implements assignment.SequenceSource for multi-process deployments.
type PostgresStore struct {
	q *db.Queries
}

func NewPostgresStore(conn *sql.DB) *PostgresStore {
	return &PostgresStore{q: db.New(conn)}
}

// LookupBySpecialties returns active clinicians whose department or
// secondary specialties intersect the given set, plus active
// internal-medicine clinicians as fallback.
func (s *PostgresStore) LookupBySpecialties(ctx context.Context, specialties []string) ([]*models.Clinician, error) {
	rows, err := s.q.DB.QueryContext(ctx,
		`SELECT id, first_name, last_name, department, specialties, status
		 FROM clinicians
		 WHERE status = 'active'
		   AND (department = ANY($1) OR specialties && $1 OR department = $2)
		 ORDER BY id`,
		pq.Array(specialties), triage.DefaultSpecialty)
	if err != nil {
		return nil, fmt.Errorf("lookup clinicians: %w", err)
	}
	defer rows.Close()

	var result []*models.Clinician
	for rows.Next() {
		var c models.Clinician
		var secondary []string
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Department,
			pq.Array(&secondary), &c.Status); err != nil {
			return nil, err
		}
		c.Specialties = secondary
		result = append(result, &c)
	}
	return result, rows.Err()
}

// ListActiveClinicians feeds the directory cache refresh.
func (s *PostgresStore) ListActiveClinicians(ctx context.Context) ([]*models.Clinician, error) {
	all, err := s.q.ListClinicians(ctx)
	if err != nil {
		return nil, err
	}
	var result []*models.Clinician
	for _, row := range all {
		if row.Status != "active" {
			continue
		}
		result = append(result, &models.Clinician{
			ID:          row.ID,
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			Department:  row.Department,
			Specialties: row.Specialties,
			Status:      row.Status,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return result, nil
}

func (s *PostgresStore) AddClinician(ctx context.Context, c *models.Clinician) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = "active"
	}
	return s.q.CreateClinician(ctx, db.Clinician{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Department:  c.Department,
		Specialties: c.Specialties,
		Status:      c.Status,
	})
}

func (s *PostgresStore) ScheduleAppointment(ctx context.Context, a *models.Appointment) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = "scheduled"
	}
	return s.q.CreateAppointment(ctx, db.Appointment{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		AppointmentDate: a.AppointmentDate,
		Status:          a.Status,
	})
}

func (s *PostgresStore) CountActiveQueueEntries(ctx context.Context, doctorID string) (int, error) {
	var count int
	err := s.q.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM queue_entries WHERE doctor_id = $1 AND status = 'waiting'",
		doctorID).Scan(&count)
	return count, err
}

func (s *PostgresStore) CountSameDayAppointments(ctx context.Context, doctorID string, day time.Time) (int, error) {
	var count int
	err := s.q.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM appointments WHERE doctor_id = $1 AND appointment_date::date = $2::date AND status = 'scheduled'",
		doctorID, day).Scan(&count)
	return count, err
}

func (s *PostgresStore) SaveQueueEntry(ctx context.Context, entry *models.QueueEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	_, err := s.q.DB.ExecContext(ctx,
		`INSERT INTO queue_entries (id, patient_id, doctor_id, sequence_number, urgency, symptom_text, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.PatientID, entry.DoctorID, entry.SequenceNumber,
		string(entry.Urgency), entry.SymptomText, entry.Status, entry.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("save queue entry: %w", err)
	}
	return entry.ID, nil
}

// NextSequenceNumber advances the per-day counter in a single atomic
// upsert. The database serializes concurrent callers, so no two
// requests can be issued the same number even across processes.
func (s *PostgresStore) NextSequenceNumber(ctx context.Context, day time.Time) (int, error) {
	var n int
	err := s.q.DB.QueryRowContext(ctx,
		`INSERT INTO queue_counters (service_day, value)
		 VALUES ($1, 1)
		 ON CONFLICT (service_day)
		 DO UPDATE SET value = queue_counters.value + 1
		 RETURNING value`,
		day.Format(queue.DayFormat)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("advance day counter: %w", err)
	}
	return n, nil
}

// WaitingEntries lists today's waiting queue in sequence order for the
// queue board.
func (s *PostgresStore) WaitingEntries(ctx context.Context, day time.Time) ([]*models.QueueEntry, error) {
	rows, err := s.q.ListWaitingQueueEntries(ctx, day)
	if err != nil {
		return nil, err
	}
	var result []*models.QueueEntry
	for _, row := range rows {
		result = append(result, &models.QueueEntry{
			ID:             row.ID,
			PatientID:      row.PatientID,
			DoctorID:       row.DoctorID,
			SequenceNumber: int(row.SequenceNumber),
			Urgency:        models.UrgencyTier(row.Urgency),
			SymptomText:    row.SymptomText,
			Status:         row.Status,
			CreatedAt:      row.CreatedAt,
		})
	}
	return result, nil
}
