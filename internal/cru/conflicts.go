package cru

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Albane192/GL02-JSFORCE/pkg/model"
)

// DetectConflicts sweeps imported slots for double-booked rooms.
// Slots are bucketed by room and day (slots missing room, day or a
// time bound are ignored), sorted by start minute, then each slot is
// compared with the later ones until a slot starts at or after its
// end. Every overlapping pair is reported: three mutually
// overlapping slots yield three conflicts.
func DetectConflicts(slots []*model.ImportedSlot) []model.Conflict {
	buckets := make(map[string][]*model.ImportedSlot)
	var order []string
	for _, s := range slots {
		if s.Room == "" || s.Day == "" || s.Start == "" || s.End == "" {
			continue
		}
		key := s.Room + "|" + s.Day
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], s)
	}

	var conflicts []model.Conflict
	for _, key := range order {
		room, day, _ := strings.Cut(key, "|")

		group := buckets[key]
		type timed struct {
			slot       *model.ImportedSlot
			start, end int
		}
		enriched := make([]timed, 0, len(group))
		for _, s := range group {
			enriched = append(enriched, timed{slot: s, start: minuteOfDay(s.Start), end: minuteOfDay(s.End)})
		}
		sort.SliceStable(enriched, func(i, j int) bool { return enriched[i].start < enriched[j].start })

		for i := 0; i < len(enriched); i++ {
			for j := i + 1; j < len(enriched); j++ {
				if enriched[j].start >= enriched[i].end {
					// sorted by start: no later slot can overlap i either
					break
				}
				conflicts = append(conflicts, model.Conflict{
					Room:   room,
					Day:    day,
					First:  enriched[i].slot,
					Second: enriched[j].slot,
				})
			}
		}
	}
	return conflicts
}

// minuteOfDay converts "9:30" to 570. A missing minute part counts
// as zero.
func minuteOfDay(t string) int {
	h, m, _ := strings.Cut(t, ":")
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return hours*60 + minutes
}
