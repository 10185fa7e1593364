package models

import "time"

type Clinician struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Department  string    `json:"department"`
	Specialties []string  `json:"specialties"`
	Status      string    `json:"status"` // active, inactive
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Clinician) IsActive() bool {
	return c.Status == "active"
}

// HasSpecialty reports whether the clinician covers the given specialty
// through either the primary department or a secondary specialty.
func (c *Clinician) HasSpecialty(tag string) bool {
	if c.Department == tag {
		return true
	}
	for _, s := range c.Specialties {
		if s == tag {
			return true
		}
	}
	return false
}
