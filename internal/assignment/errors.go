package assignment

import "errors"

var (
	// ErrNoAvailableClinician means the candidate pool was empty even
	// after the internal-medicine fallback. Terminal for the request;
	// the caller falls back to manual triage.
	ErrNoAvailableClinician = errors.New("no available clinician")

	// ErrSequenceReservation means the day counter could not be
	// advanced. Terminal for the request; no record is produced.
	ErrSequenceReservation = errors.New("sequence reservation failed")
)
