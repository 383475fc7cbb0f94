package cru

import (
	"fmt"
	"strings"

	"github.com/Albane192/GL02-JSFORCE/pkg/model"
)

var dayNames = map[string]string{
	"L":  "Monday",
	"MA": "Tuesday",
	"ME": "Wednesday",
	"J":  "Thursday",
	"V":  "Friday",
	"S":  "Saturday",
	"D":  "Sunday",
}

// DayName expands a CRU day code, returning the code itself when
// unknown.
func DayName(code string) string {
	if name, ok := dayNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// CourseInfo returns an imported course and its slots.
func CourseInfo(store Store, code string) (*model.ImportedCourse, []*model.ImportedSlot, error) {
	courses, err := store.ImportedCourses()
	if err != nil {
		return nil, nil, err
	}
	var course *model.ImportedCourse
	for _, c := range courses {
		if c.Code == code {
			course = c
			break
		}
	}
	if course == nil {
		return nil, nil, fmt.Errorf("cru course %s: %w", code, ErrNotFound)
	}

	slots, err := store.ImportedSlots()
	if err != nil {
		return nil, nil, err
	}
	var courseSlots []*model.ImportedSlot
	for _, s := range slots {
		if s.Course == code {
			courseSlots = append(courseSlots, s)
		}
	}
	return course, courseSlots, nil
}

// RoomInfo returns the imported slots held in one room and the
// largest capacity observed among them.
func RoomInfo(store Store, roomID string) ([]*model.ImportedSlot, int, error) {
	slots, err := store.ImportedSlots()
	if err != nil {
		return nil, 0, err
	}
	var roomSlots []*model.ImportedSlot
	maxCapacity := 0
	for _, s := range slots {
		if s.Room != roomID {
			continue
		}
		roomSlots = append(roomSlots, s)
		if s.Capacity != nil && *s.Capacity > maxCapacity {
			maxCapacity = *s.Capacity
		}
	}
	return roomSlots, maxCapacity, nil
}
