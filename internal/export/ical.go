// Package export writes reservations and imported CRU slots to
// interchange formats (iCalendar and the flat CRU notation).
package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Albane192/GL02-JSFORCE/pkg/model"
)

const (
	icalStampLayout = "20060102T150405"
	dateLayout      = "2006-01-02"
)

// icalTimestamp renders "2025-03-10T09:00" as "20250310T090000".
func icalTimestamp(s string) string {
	return strings.NewReplacer("-", "", ":", "").Replace(s) + "00"
}

// ReservationICal renders one reservation as a VCALENDAR holding a
// single event with a deterministic UID.
func ReservationICal(r *model.Reservation) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//SRU//Planning//FR",
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:RESA-%d@sru", r.ID),
		"DTSTART:" + icalTimestamp(r.Start),
		"DTEND:" + icalTimestamp(r.End),
		"SUMMARY:Course " + r.Course,
		"LOCATION:" + r.Room,
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}
	return strings.Join(lines, "\r\n")
}

func WriteReservationICal(r *model.Reservation, path string) error {
	return os.WriteFile(path, []byte(ReservationICal(r)), 0o644)
}

var dayWeekdays = map[string]time.Weekday{
	"L":  time.Monday,
	"LU": time.Monday,
	"MA": time.Tuesday,
	"ME": time.Wednesday,
	"J":  time.Thursday,
	"V":  time.Friday,
	"S":  time.Saturday,
	"SA": time.Saturday,
	"D":  time.Sunday,
}

type event struct {
	uid      string
	start    time.Time
	end      time.Time
	summary  string
	location string
}

// CourseICal expands the weekly slots of an imported course into
// dated events between from and to (inclusive, "2006-01-02") and
// renders them as a VCALENDAR. Slots with an unknown day code or
// missing time bounds are skipped. Returns the calendar text and the
// event count.
func CourseICal(code string, slots []*model.ImportedSlot, from, to string) (string, int, error) {
	start, err := time.Parse(dateLayout, from)
	if err != nil {
		return "", 0, err
	}
	end, err := time.Parse(dateLayout, to)
	if err != nil {
		return "", 0, err
	}
	end = end.Add(24*time.Hour - time.Second)

	var events []event
	for _, slot := range slots {
		weekday, known := dayWeekdays[strings.ToUpper(slot.Day)]
		if !known || slot.Start == "" || slot.End == "" {
			continue
		}

		day := start
		for day.Weekday() != weekday {
			day = day.AddDate(0, 0, 1)
		}
		for !day.After(end) {
			evStart, ok := atTime(day, slot.Start)
			evEnd, ok2 := atTime(day, slot.End)
			if !ok || !ok2 {
				break
			}
			uid := fmt.Sprintf("CRU-%s-%s-%d@sru", code, slot.LineNo, evStart.Unix())
			if slot.LineNo == "" {
				uid = fmt.Sprintf("CRU-%s-%s@sru", code, uuid.NewString())
			}
			events = append(events, event{
				uid:      uid,
				start:    evStart,
				end:      evEnd,
				summary:  fmt.Sprintf("Course %s (%s)", code, slot.TypeCode),
				location: slot.Room,
			})
			day = day.AddDate(0, 0, 7)
		}
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//SRU//CRU-Planning//FR",
	}
	for _, ev := range events {
		lines = append(lines,
			"BEGIN:VEVENT",
			"UID:"+ev.uid,
			"DTSTART:"+ev.start.Format(icalStampLayout),
			"DTEND:"+ev.end.Format(icalStampLayout),
			"SUMMARY:"+ev.summary,
			"LOCATION:"+ev.location,
			"END:VEVENT",
		)
	}
	lines = append(lines, "END:VCALENDAR", "")
	return strings.Join(lines, "\r\n"), len(events), nil
}

// WriteCourseICal writes the weekly expansion to path and returns
// the event count.
func WriteCourseICal(code string, slots []*model.ImportedSlot, from, to, path string) (int, error) {
	ical, count, err := CourseICal(code, slots, from, to)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, []byte(ical), 0o644); err != nil {
		return 0, err
	}
	return count, nil
}

// atTime anchors an "HH:MM" wall-clock time on a calendar day.
func atTime(day time.Time, hhmm string) (time.Time, bool) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), true
}
