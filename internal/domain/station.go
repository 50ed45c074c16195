// Package domain contains the core data types for the station registry.
// This package is imported by every other internal package (repo, service,
// handler) and carries no persistence or transport logic.
package domain

// Station is a named radio frequency entry.
// Actual marks the station as the one currently in use.
type Station struct {
	ID     StationID `json:"_id"`
	Name   string    `json:"name"`
	Freq   float64   `json:"freq"`
	Actual bool      `json:"actual"`
}

// StationPatch carries a partial update. Nil fields are left unchanged.
type StationPatch struct {
	Name   *string
	Freq   *float64
	Actual *bool
}

// IsEmpty reports whether the patch would change nothing.
func (p StationPatch) IsEmpty() bool {
	return p.Name == nil && p.Freq == nil && p.Actual == nil
}

// Apply returns s with every non-nil patch field written over it.
func (p StationPatch) Apply(s Station) Station {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Freq != nil {
		s.Freq = *p.Freq
	}
	if p.Actual != nil {
		s.Actual = *p.Actual
	}
	return s
}
