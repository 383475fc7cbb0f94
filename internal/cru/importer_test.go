package cru

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Albane192/GL02-JSFORCE/pkg/model"
)

type memStore struct {
	courses []*model.ImportedCourse
	slots   []*model.ImportedSlot
	saves   int
}

func (m *memStore) ImportedCourses() ([]*model.ImportedCourse, error) { return m.courses, nil }
func (m *memStore) ImportedSlots() ([]*model.ImportedSlot, error)     { return m.slots, nil }
func (m *memStore) SaveImported(courses []*model.ImportedCourse, slots []*model.ImportedSlot) error {
	m.courses = courses
	m.slots = slots
	m.saves++
	return nil
}

func TestParse_SingleCourseRoundTrip(t *testing.T) {
	courses, slots := Parse("+C1\n1,C1,P=24,H=L 8:00-10:00,F1,S=A001//")

	if len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(courses))
	}
	c := courses[0]
	if c.Code != "C1" || c.SlotsCount != 1 || c.MaxCapacity != 24 {
		t.Errorf("unexpected course %+v", c)
	}

	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	s := slots[0]
	if s.Course != "C1" || s.LineNo != "1" || s.TypeCode != "C1" {
		t.Errorf("unexpected slot identity %+v", s)
	}
	if s.Capacity == nil || *s.Capacity != 24 {
		t.Errorf("expected capacity 24, got %v", s.Capacity)
	}
	if s.Day != "L" || s.Start != "8:00" || s.End != "10:00" {
		t.Errorf("expected L 8:00-10:00, got %s %s-%s", s.Day, s.Start, s.End)
	}
	if s.Subgroup != "F1" || s.Room != "A001" {
		t.Errorf("expected subgroup F1 in A001, got %s in %s", s.Subgroup, s.Room)
	}
}

func TestParse_MultipleCourses(t *testing.T) {
	input := `+MC01
1,C1,P=100,H=L 8:00-10:00,F1,S=A001//
2,T1,P=24,H=MA 14:00-16:00,F1,S=B201//
+ME02
1,C1,P=150,H=J 10:00-12:00,F1,S=P202//
`
	courses, slots := Parse(input)

	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
	if courses[0].Code != "MC01" || courses[0].SlotsCount != 2 {
		t.Errorf("unexpected first course %+v", courses[0])
	}
	if courses[1].Code != "ME02" || courses[1].SlotsCount != 1 {
		t.Errorf("unexpected second course %+v", courses[1])
	}
	if courses[0].MaxCapacity != 100 {
		t.Errorf("max capacity across slots is 100, got %d", courses[0].MaxCapacity)
	}
	if len(slots) != 3 {
		t.Errorf("expected 3 slots, got %d", len(slots))
	}
	if slots[2].Course != "ME02" {
		t.Errorf("slots carry their course code, got %s", slots[2].Course)
	}
}

func TestParse_SlotLineOutsideCourseIgnored(t *testing.T) {
	courses, slots := Parse("1,C1,P=24,H=L 8:00-10:00,S=A001//\n+C1\n")
	if len(slots) != 0 {
		t.Errorf("slot lines before any course block must be ignored, got %d slots", len(slots))
	}
	if len(courses) != 1 {
		t.Errorf("the course block itself still registers, got %d courses", len(courses))
	}
}

func TestParse_NoiseLinesSkipped(t *testing.T) {
	input := `EDT.CRU - export
some free text header

+C1
garbage line without a number
1,C1,P=24,H=L 8:00-10:00,S=A001//
`
	courses, slots := Parse(input)
	if len(courses) != 1 || len(slots) != 1 {
		t.Errorf("expected 1 course and 1 slot, got %d and %d", len(courses), len(slots))
	}
}

func TestParse_TooFewFieldsDiscarded(t *testing.T) {
	_, slots := Parse("+C1\n1,//\n1\n")
	if len(slots) != 0 {
		t.Errorf("lines with fewer than 2 fields must yield no slot, got %d", len(slots))
	}
}

func TestParse_UnknownTokensDropped(t *testing.T) {
	_, slots := Parse("+C1\n1,C1,X=42,H=L 8:00-10:00,S=A001//")
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if slots[0].Capacity != nil {
		t.Errorf("X=42 is not a capacity token, got %v", slots[0].Capacity)
	}
	if slots[0].Room != "A001" {
		t.Errorf("recognized tokens still apply, got room %q", slots[0].Room)
	}
}

func TestParse_NonNumericCapacityIgnored(t *testing.T) {
	courses, slots := Parse("+C1\n1,C1,P=lots,H=L 8:00-10:00,S=A001//")
	if slots[0].Capacity != nil {
		t.Errorf("non-numeric capacity must stay nil, got %v", slots[0].Capacity)
	}
	if courses[0].MaxCapacity != 0 {
		t.Errorf("nil capacity must not raise max capacity, got %d", courses[0].MaxCapacity)
	}
}

func TestParse_SubgroupCaseInsensitive(t *testing.T) {
	_, slots := Parse("+C1\n1,D1,f2,H=V 8:00-10:00,S=A001//")
	if slots[0].Subgroup != "f2" {
		t.Errorf("expected subgroup f2, got %q", slots[0].Subgroup)
	}
}

func TestParse_ReRegisteredCourseAccumulates(t *testing.T) {
	input := `+C1
1,C1,P=10,H=L 8:00-10:00,S=A001//
+C2
1,C1,P=5,H=L 10:00-12:00,S=A001//
+C1
2,T1,P=30,H=MA 8:00-10:00,S=B101//
`
	courses, _ := Parse(input)
	if len(courses) != 2 {
		t.Fatalf("re-opening a course block must not duplicate it, got %d courses", len(courses))
	}
	if courses[0].SlotsCount != 2 {
		t.Errorf("expected 2 slots on C1, got %d", courses[0].SlotsCount)
	}
	if courses[0].MaxCapacity != 30 {
		t.Errorf("expected max capacity 30 on C1, got %d", courses[0].MaxCapacity)
	}
}

func TestImportFile_ReplacesStoredData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edt.cru")
	if err := os.WriteFile(path, []byte("+C1\n1,C1,P=24,H=L 8:00-10:00,S=A001//\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := &memStore{
		courses: []*model.ImportedCourse{{Code: "OLD"}},
		slots:   []*model.ImportedSlot{{Course: "OLD"}},
	}
	result, err := ImportFile(path, store)
	if err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}
	if result.CoursesCount != 1 || result.SlotsCount != 1 {
		t.Errorf("unexpected result %+v", result)
	}
	if len(store.courses) != 1 || store.courses[0].Code != "C1" {
		t.Errorf("import must replace the prior course set, got %+v", store.courses)
	}
	if len(store.slots) != 1 || store.slots[0].Course != "C1" {
		t.Errorf("import must replace the prior slot set, got %+v", store.slots)
	}
}

func TestImportFile_MissingFile(t *testing.T) {
	store := &memStore{}
	_, err := ImportFile(filepath.Join(t.TempDir(), "absent.cru"), store)
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
	if store.saves != 0 {
		t.Errorf("a missing file must fail before any save")
	}
}
