package cru

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/Albane192/GL02-JSFORCE/pkg/model"
)

var (
	ErrFileNotFound = errors.New("cru file not found")
	ErrNotFound     = errors.New("not found")
)

// Store persists imported CRU data. A save replaces both
// collections in full; re-importing is the only way to refresh them.
type Store interface {
	ImportedCourses() ([]*model.ImportedCourse, error)
	ImportedSlots() ([]*model.ImportedSlot, error)
	SaveImported([]*model.ImportedCourse, []*model.ImportedSlot) error
}

// ImportResult summarizes one CRU file import.
type ImportResult struct {
	File         string `json:"file"`
	CoursesCount int    `json:"coursesCount"`
	SlotsCount   int    `json:"slotsCount"`
}

// ImportFile parses a CRU timetable file and replaces the stored
// imported data with its contents.
func ImportFile(path string, store Store) (*ImportResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	courses, slots := Parse(string(raw))
	if err := store.SaveImported(courses, slots); err != nil {
		return nil, err
	}
	return &ImportResult{File: path, CoursesCount: len(courses), SlotsCount: len(slots)}, nil
}

var (
	slotLinePattern = regexp.MustCompile(`^\d+,`)
	subgroupPattern = regexp.MustCompile(`(?i)^F\d+$`)
)

// Parse reads CRU text line by line with one piece of state, the
// current course code. A "+CODE" line opens a course block
// (re-registering a seen code is a no-op); numbered lines inside a
// block describe slots. Anything else, including malformed slot
// lines, is skipped rather than reported.
func Parse(content string) ([]*model.ImportedCourse, []*model.ImportedSlot) {
	var courses []*model.ImportedCourse
	byCode := make(map[string]*model.ImportedCourse)
	var slots []*model.ImportedSlot

	currentCode := ""
	for _, rawLine := range strings.Split(content, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "+") {
			currentCode = strings.TrimSpace(line[1:])
			if _, seen := byCode[currentCode]; !seen {
				course := &model.ImportedCourse{Code: currentCode}
				byCode[currentCode] = course
				courses = append(courses, course)
			}
			continue
		}

		if currentCode == "" || !slotLinePattern.MatchString(line) {
			continue
		}
		slot := parseSlotLine(line, currentCode)
		if slot == nil {
			continue
		}
		slots = append(slots, slot)

		course := byCode[currentCode]
		course.SlotsCount++
		if slot.Capacity != nil && *slot.Capacity > course.MaxCapacity {
			course.MaxCapacity = *slot.Capacity
		}
	}
	return courses, slots
}

// parseSlotLine parses "1,C1,P=24,H=J 10:00-12:00,F1,S=P202//".
// Fields past the type code are order-independent key-prefixed
// tokens; unrecognized tokens are dropped. Returns nil when fewer
// than two fields survive trimming.
func parseSlotLine(line, courseCode string) *model.ImportedSlot {
	cleaned := strings.TrimSuffix(line, "//")

	var parts []string
	for _, p := range strings.Split(cleaned, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 {
		return nil
	}

	slot := &model.ImportedSlot{
		Course:   courseCode,
		LineNo:   parts[0],
		TypeCode: parts[1],
	}
	for _, part := range parts[2:] {
		switch {
		case strings.HasPrefix(part, "P="):
			if n, err := strconv.Atoi(strings.TrimSpace(part[2:])); err == nil {
				slot.Capacity = &n
			}
		case strings.HasPrefix(part, "H="):
			slot.Day, slot.Start, slot.End = parseHours(part[2:])
		case strings.HasPrefix(part, "S="):
			slot.Room = strings.TrimSpace(part[2:])
		case subgroupPattern.MatchString(part):
			slot.Subgroup = part
		}
	}
	return slot
}

// parseHours splits "J 10:00-12:00" into day code and time bounds.
// A missing time part leaves the bounds empty; the conflict detector
// discards such slots.
func parseHours(s string) (day, start, end string) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return "", "", ""
	}
	day = fields[0]
	if len(fields) > 1 {
		times := strings.SplitN(fields[1], "-", 2)
		start = times[0]
		if len(times) > 1 {
			end = times[1]
		}
	}
	return day, start, end
}
