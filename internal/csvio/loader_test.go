package csvio

import (
	"testing"

	"github.com/Albane192/GL02-JSFORCE/pkg/model"
)

func TestMissingFilesYieldEmptyCollections(t *testing.T) {
	store := NewFileStore(t.TempDir())

	rooms, err := store.Rooms()
	if err != nil {
		t.Fatalf("Rooms on an empty dir failed: %v", err)
	}
	if len(rooms) != 0 {
		t.Errorf("expected no rooms, got %d", len(rooms))
	}

	reservations, err := store.Reservations()
	if err != nil {
		t.Fatalf("Reservations on an empty dir failed: %v", err)
	}
	if len(reservations) != 0 {
		t.Errorf("expected no reservations, got %d", len(reservations))
	}
}

func TestReservationsRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())
	in := []*model.Reservation{
		{ID: 1, Room: "A001", Teacher: "dupont", Group: "G1", Course: "MATH01",
			Start: "2025-03-10T09:00", End: "2025-03-10T11:00"},
		{ID: 2, Room: "B101", Teacher: "martin", Group: "G2", Course: "PHYS02",
			Start: "2025-03-11T14:00", End: "2025-03-11T16:00"},
	}
	if err := store.SaveReservations(in); err != nil {
		t.Fatalf("SaveReservations failed: %v", err)
	}

	out, err := store.Reservations()
	if err != nil {
		t.Fatalf("Reservations failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 reservations, got %d", len(out))
	}
	if *out[0] != *in[0] || *out[1] != *in[1] {
		t.Errorf("round trip mismatch: %+v vs %+v", out, in)
	}
}

func TestSaveOverwritesWholeCollection(t *testing.T) {
	store := NewFileStore(t.TempDir())
	if err := store.SaveReservations([]*model.Reservation{{ID: 1, Room: "A001"}, {ID: 2, Room: "B101"}}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveReservations([]*model.Reservation{{ID: 3, Room: "C301"}}); err != nil {
		t.Fatal(err)
	}

	out, err := store.Reservations()
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].ID != 3 {
		t.Errorf("save must rewrite the file in full, got %+v", out)
	}
}

func TestRoomEquipmentTags(t *testing.T) {
	store := NewFileStore(t.TempDir())
	in := []*model.Room{
		{ID: "A001", Capacity: 30, Equipment: model.TagList{"projector", "whiteboard"}},
		{ID: "B101", Capacity: 20},
	}
	if err := store.SaveRooms(in); err != nil {
		t.Fatalf("SaveRooms failed: %v", err)
	}

	out, err := store.Rooms()
	if err != nil {
		t.Fatalf("Rooms failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(out))
	}
	if len(out[0].Equipment) != 2 || out[0].Equipment[0] != "projector" || out[0].Equipment[1] != "whiteboard" {
		t.Errorf("equipment tags lost in round trip: %+v", out[0].Equipment)
	}
	if len(out[1].Equipment) != 0 {
		t.Errorf("empty equipment must stay empty, got %+v", out[1].Equipment)
	}
}

func TestImportedSlotsNilCapacity(t *testing.T) {
	store := NewFileStore(t.TempDir())
	capacity := 24
	in := []*model.ImportedSlot{
		{Course: "MC01", LineNo: "1", TypeCode: "C1", Capacity: &capacity,
			Day: "L", Start: "8:00", End: "10:00", Room: "A001"},
		{Course: "MC01", LineNo: "2", TypeCode: "T1",
			Day: "MA", Start: "14:00", End: "16:00", Room: "B101"},
	}
	if err := store.SaveImported([]*model.ImportedCourse{{Code: "MC01", SlotsCount: 2, MaxCapacity: 24}}, in); err != nil {
		t.Fatalf("SaveImported failed: %v", err)
	}

	out, err := store.ImportedSlots()
	if err != nil {
		t.Fatalf("ImportedSlots failed: %v", err)
	}
	if out[0].Capacity == nil || *out[0].Capacity != 24 {
		t.Errorf("expected capacity 24, got %v", out[0].Capacity)
	}
	if out[1].Capacity != nil {
		t.Errorf("absent capacity must stay nil, got %v", out[1].Capacity)
	}

	courses, err := store.ImportedCourses()
	if err != nil {
		t.Fatalf("ImportedCourses failed: %v", err)
	}
	if len(courses) != 1 || courses[0].MaxCapacity != 24 {
		t.Errorf("unexpected imported courses %+v", courses)
	}
}
