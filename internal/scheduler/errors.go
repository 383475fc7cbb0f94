package scheduler

import (
	"errors"
	"fmt"

	"github.com/Albane192/GL02-JSFORCE/pkg/model"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidPeriod = errors.New("invalid period")
)

// ConflictReason tells which constrained resource a candidate
// reservation collided on. Room takes priority over teacher over
// group when one existing record triggers several.
type ConflictReason int

const (
	ConflictRoom ConflictReason = iota + 1
	ConflictTeacher
	ConflictGroup
)

func (r ConflictReason) String() string {
	switch r {
	case ConflictRoom:
		return "room"
	case ConflictTeacher:
		return "teacher"
	case ConflictGroup:
		return "group"
	}
	return "unknown"
}

// ConflictError reports a double booking found while creating a
// reservation. With is the first existing record that collided.
type ConflictError struct {
	Reason ConflictReason
	With   model.Reservation
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s already booked by reservation #%d", e.Reason, e.With.ID)
}
