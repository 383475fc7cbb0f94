package csvio

import (
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/Albane192/GL02-JSFORCE/pkg/model"
)

func (s *FileStore) save(name string, in interface{}) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.MarshalFile(in, f)
}

// SaveReservations rewrites the reservation collection in full.
func (s *FileStore) SaveReservations(reservations []*model.Reservation) error {
	return s.save(ReservationsFile, &reservations)
}

// SaveImported replaces both imported CRU collections with the
// outcome of a fresh import.
func (s *FileStore) SaveImported(courses []*model.ImportedCourse, slots []*model.ImportedSlot) error {
	if err := s.save(CruCoursesFile, &courses); err != nil {
		return err
	}
	return s.save(CruSlotsFile, &slots)
}

// SaveRooms and SaveCourses exist for seeding reference data; the
// engine itself treats rooms and courses as read-only.
func (s *FileStore) SaveRooms(rooms []*model.Room) error {
	return s.save(RoomsFile, &rooms)
}

func (s *FileStore) SaveCourses(courses []*model.Course) error {
	return s.save(CoursesFile, &courses)
}

func (s *FileStore) SaveUsers(users []*model.User) error {
	return s.save(UsersFile, &users)
}
