package assignment

import (
	"context"
	"time"

	"clinic-assignment/internal/models"
)

type MockDataStore struct {
	CountActiveQueueEntriesFunc   func(ctx context.Context, doctorID string) (int, error)
	CountSameDayAppointmentsFunc  func(ctx context.Context, doctorID string, day time.Time) (int, error)
	SaveQueueEntryFunc            func(ctx context.Context, entry *models.QueueEntry) (string, error)
}

func (m *MockDataStore) CountActiveQueueEntries(ctx context.Context, doctorID string) (int, error) {
	if m.CountActiveQueueEntriesFunc != nil {
		return m.CountActiveQueueEntriesFunc(ctx, doctorID)
	}
	return 0, nil
}

func (m *MockDataStore) CountSameDayAppointments(ctx context.Context, doctorID string, day time.Time) (int, error) {
	if m.CountSameDayAppointmentsFunc != nil {
		return m.CountSameDayAppointmentsFunc(ctx, doctorID, day)
	}
	return 0, nil
}

func (m *MockDataStore) SaveQueueEntry(ctx context.Context, entry *models.QueueEntry) (string, error) {
	if m.SaveQueueEntryFunc != nil {
		return m.SaveQueueEntryFunc(ctx, entry)
	}
	return "entry-1", nil
}

type MockDirectory struct {
	LookupBySpecialtiesFunc func(ctx context.Context, specialties []string) ([]*models.Clinician, error)
}

func (m *MockDirectory) LookupBySpecialties(ctx context.Context, specialties []string) ([]*models.Clinician, error) {
	return m.LookupBySpecialtiesFunc(ctx, specialties)
}

type MockSequenceSource struct {
	NextSequenceNumberFunc func(ctx context.Context, day time.Time) (int, error)
	Calls                  int
}

func (m *MockSequenceSource) NextSequenceNumber(ctx context.Context, day time.Time) (int, error) {
	m.Calls++
	if m.NextSequenceNumberFunc != nil {
		return m.NextSequenceNumberFunc(ctx, day)
	}
	return m.Calls, nil
}
