package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/Albane192/GL02-JSFORCE/pkg/model"
)

// Store gives the engine whole-collection access to persisted
// records. Every operation reloads what it needs; a save rewrites
// the full collection.
type Store interface {
	Rooms() ([]*model.Room, error)
	Courses() ([]*model.Course, error)
	Reservations() ([]*model.Reservation, error)
	SaveReservations([]*model.Reservation) error
}

// Scheduler books rooms with conflict checking over a Store. It is
// single-process and synchronous: callers must guarantee exclusive
// access to the underlying record set.
type Scheduler struct {
	store Store
}

func New(store Store) *Scheduler {
	return &Scheduler{store: store}
}

// ReservationSpec describes a reservation to create. The id is
// assigned by the engine.
type ReservationSpec struct {
	Room    string
	Teacher string
	Group   string
	Course  string
	Start   string
	End     string
}

// RoomOccupancy reports how much of a query period one room was
// booked. Rate is a percentage; overlapping reservations in the same
// room double-count minutes, so it can exceed 100.
type RoomOccupancy struct {
	Room            string  `json:"room"`
	Capacity        int     `json:"capacity"`
	OccupiedMinutes float64 `json:"occupiedMinutes"`
	TotalMinutes    float64 `json:"totalMinutes"`
	Rate            float64 `json:"rate"`
}

type interval struct {
	start, end time.Time
}

func reservationInterval(r *model.Reservation) (interval, error) {
	start, err := ParseDateTime(r.Start)
	if err != nil {
		return interval{}, fmt.Errorf("reservation #%d: %w", r.ID, err)
	}
	end, err := ParseDateTime(r.End)
	if err != nil {
		return interval{}, fmt.Errorf("reservation #%d: %w", r.ID, err)
	}
	return interval{start: start, end: end}, nil
}

// checkConflict scans existing reservations in order and returns the
// first collision with the candidate window. Scan order decides
// which record is reported when several collide.
func checkConflict(cand interval, spec ReservationSpec, existing []*model.Reservation) (*ConflictError, error) {
	for _, r := range existing {
		iv, err := reservationInterval(r)
		if err != nil {
			return nil, err
		}
		if !Overlaps(cand.start, cand.end, iv.start, iv.end) {
			continue
		}
		switch {
		case r.Room == spec.Room:
			return &ConflictError{Reason: ConflictRoom, With: *r}, nil
		case r.Teacher == spec.Teacher:
			return &ConflictError{Reason: ConflictTeacher, With: *r}, nil
		case r.Group == spec.Group:
			return &ConflictError{Reason: ConflictGroup, With: *r}, nil
		}
	}
	return nil, nil
}

func nextID(reservations []*model.Reservation) int {
	max := 0
	for _, r := range reservations {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

// CreateReservation runs the conflict scan and, if it passes,
// appends the new record and persists the whole collection.
// A collision is returned as a *ConflictError and nothing changes.
func (s *Scheduler) CreateReservation(spec ReservationSpec) (*model.Reservation, error) {
	start, err := ParseDateTime(spec.Start)
	if err != nil {
		return nil, err
	}
	end, err := ParseDateTime(spec.End)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.Reservations()
	if err != nil {
		return nil, err
	}

	conflict, err := checkConflict(interval{start: start, end: end}, spec, existing)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, conflict
	}

	res := &model.Reservation{
		ID:      nextID(existing),
		Room:    spec.Room,
		Teacher: spec.Teacher,
		Group:   spec.Group,
		Course:  spec.Course,
		Start:   spec.Start,
		End:     spec.End,
	}
	existing = append(existing, res)
	if err := s.store.SaveReservations(existing); err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteReservation removes a reservation by id and returns the
// removed record. Unknown ids leave the collection untouched.
func (s *Scheduler) DeleteReservation(id int) (*model.Reservation, error) {
	reservations, err := s.store.Reservations()
	if err != nil {
		return nil, err
	}
	for i, r := range reservations {
		if r.ID != id {
			continue
		}
		removed := r
		reservations = append(reservations[:i], reservations[i+1:]...)
		if err := s.store.SaveReservations(reservations); err != nil {
			return nil, err
		}
		return removed, nil
	}
	return nil, fmt.Errorf("reservation %d: %w", id, ErrNotFound)
}

// IsRoomFree reports whether no reservation for the room overlaps
// the window.
func (s *Scheduler) IsRoomFree(roomID, startStr, endStr string) (bool, error) {
	start, err := ParseDateTime(startStr)
	if err != nil {
		return false, err
	}
	end, err := ParseDateTime(endStr)
	if err != nil {
		return false, err
	}
	reservations, err := s.store.Reservations()
	if err != nil {
		return false, err
	}
	for _, r := range reservations {
		if r.Room != roomID {
			continue
		}
		iv, err := reservationInterval(r)
		if err != nil {
			return false, err
		}
		if Overlaps(start, end, iv.start, iv.end) {
			return false, nil
		}
	}
	return true, nil
}

// FindBestRoom picks the free room wasting the least capacity over
// the requested size. Ties keep room-list order. A nil room with a
// nil error means no room fits.
func (s *Scheduler) FindBestRoom(capacity int, startStr, endStr string) (*model.Room, error) {
	rooms, err := s.store.Rooms()
	if err != nil {
		return nil, err
	}

	var free []*model.Room
	for _, room := range rooms {
		ok, err := s.IsRoomFree(room.ID, startStr, endStr)
		if err != nil {
			return nil, err
		}
		if ok {
			free = append(free, room)
		}
	}

	var fitting []*model.Room
	for _, room := range free {
		if room.Capacity >= capacity {
			fitting = append(fitting, room)
		}
	}
	if len(fitting) == 0 {
		return nil, nil
	}

	sort.SliceStable(fitting, func(i, j int) bool {
		return fitting[i].Capacity-capacity < fitting[j].Capacity-capacity
	})
	return fitting[0], nil
}

func intersectionMinutes(startA, endA, startB, endB time.Time) float64 {
	start := startA
	if startB.After(start) {
		start = startB
	}
	end := endA
	if endB.Before(end) {
		end = endB
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start).Minutes()
}

// Occupancy computes per-room occupied minutes and occupancy rate
// over a period. Reservations are not merged first, so double-booked
// rooms double-count. Output follows room-list order.
func (s *Scheduler) Occupancy(startStr, endStr string) ([]RoomOccupancy, error) {
	periodStart, err := ParseDateTime(startStr)
	if err != nil {
		return nil, err
	}
	periodEnd, err := ParseDateTime(endStr)
	if err != nil {
		return nil, err
	}
	total := periodEnd.Sub(periodStart).Minutes()
	if total <= 0 {
		return nil, ErrInvalidPeriod
	}

	rooms, err := s.store.Rooms()
	if err != nil {
		return nil, err
	}
	reservations, err := s.store.Reservations()
	if err != nil {
		return nil, err
	}

	stats := make([]RoomOccupancy, 0, len(rooms))
	for _, room := range rooms {
		occupied := 0.0
		for _, r := range reservations {
			if r.Room != room.ID {
				continue
			}
			iv, err := reservationInterval(r)
			if err != nil {
				return nil, err
			}
			occupied += intersectionMinutes(periodStart, periodEnd, iv.start, iv.end)
		}
		stats = append(stats, RoomOccupancy{
			Room:            room.ID,
			Capacity:        room.Capacity,
			OccupiedMinutes: occupied,
			TotalMinutes:    total,
			Rate:            occupied / total * 100,
		})
	}
	return stats, nil
}

// Rooms lists all rooms in their stored order.
func (s *Scheduler) Rooms() ([]*model.Room, error) {
	return s.store.Rooms()
}

// Reservations lists all reservations in their stored order.
func (s *Scheduler) Reservations() ([]*model.Reservation, error) {
	return s.store.Reservations()
}

// RoomByID looks up one room.
func (s *Scheduler) RoomByID(id string) (*model.Room, error) {
	rooms, err := s.store.Rooms()
	if err != nil {
		return nil, err
	}
	for _, r := range rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("room %s: %w", id, ErrNotFound)
}

// CourseByID looks up one course.
func (s *Scheduler) CourseByID(id string) (*model.Course, error) {
	courses, err := s.store.Courses()
	if err != nil {
		return nil, err
	}
	for _, c := range courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("course %s: %w", id, ErrNotFound)
}

// ReservationByID looks up one reservation.
func (s *Scheduler) ReservationByID(id int) (*model.Reservation, error) {
	reservations, err := s.store.Reservations()
	if err != nil {
		return nil, err
	}
	for _, r := range reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("reservation %d: %w", id, ErrNotFound)
}

// ReservationsForRoom returns the room's reservations overlapping
// the window, sorted by start time.
func (s *Scheduler) ReservationsForRoom(roomID, startStr, endStr string) ([]*model.Reservation, error) {
	start, err := ParseDateTime(startStr)
	if err != nil {
		return nil, err
	}
	end, err := ParseDateTime(endStr)
	if err != nil {
		return nil, err
	}
	reservations, err := s.store.Reservations()
	if err != nil {
		return nil, err
	}

	var out []*model.Reservation
	for _, r := range reservations {
		if r.Room != roomID {
			continue
		}
		iv, err := reservationInterval(r)
		if err != nil {
			return nil, err
		}
		if Overlaps(start, end, iv.start, iv.end) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}

// ReservationsForCourse returns every reservation of a course,
// sorted by start time.
func (s *Scheduler) ReservationsForCourse(courseID string) ([]*model.Reservation, error) {
	reservations, err := s.store.Reservations()
	if err != nil {
		return nil, err
	}
	var out []*model.Reservation
	for _, r := range reservations {
		if r.Course == courseID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}
