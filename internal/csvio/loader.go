// Package csvio persists every record collection as one CSV file in
// a single data directory. Loads of a missing file yield an empty
// collection; saves rewrite the whole file. There is no row-level
// access: the store reads and writes collections as atomic wholes.
package csvio

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/Albane192/GL02-JSFORCE/pkg/model"
)

// Collection file names under the data directory.
const (
	RoomsFile        = "rooms.csv"
	CoursesFile      = "courses.csv"
	ReservationsFile = "reservations.csv"
	UsersFile        = "users.csv"
	CruCoursesFile   = "cru-courses.csv"
	CruSlotsFile     = "cru-slots.csv"
)

type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the data directory the store reads and writes.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) load(name string, out interface{}) error {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	defer f.Close()

	if err := gocsv.UnmarshalFile(f, out); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil
		}
		return err
	}
	return nil
}

func (s *FileStore) Rooms() ([]*model.Room, error) {
	rooms := []*model.Room{}
	if err := s.load(RoomsFile, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *FileStore) Courses() ([]*model.Course, error) {
	courses := []*model.Course{}
	if err := s.load(CoursesFile, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *FileStore) Reservations() ([]*model.Reservation, error) {
	reservations := []*model.Reservation{}
	if err := s.load(ReservationsFile, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *FileStore) Users() ([]*model.User, error) {
	users := []*model.User{}
	if err := s.load(UsersFile, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *FileStore) ImportedCourses() ([]*model.ImportedCourse, error) {
	courses := []*model.ImportedCourse{}
	if err := s.load(CruCoursesFile, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *FileStore) ImportedSlots() ([]*model.ImportedSlot, error) {
	slots := []*model.ImportedSlot{}
	if err := s.load(CruSlotsFile, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}
