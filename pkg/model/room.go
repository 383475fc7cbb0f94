package model

import "strings"

// TagList holds equipment tags. It marshals to a single
// pipe-separated CSV field.
type TagList []string

func (t TagList) MarshalCSV() (string, error) {
	return strings.Join(t, "|"), nil
}

func (t *TagList) UnmarshalCSV(field string) error {
	*t = nil
	for _, part := range strings.Split(field, "|") {
		part = strings.TrimSpace(part)
		if part != "" {
			*t = append(*t, part)
		}
	}
	return nil
}

// Room is reference data maintained by an administrative process.
// The scheduling engine never mutates rooms.
type Room struct {
	ID        string  `csv:"room_id" json:"id"`
	Capacity  int     `csv:"capacity" json:"capacity"`
	Equipment TagList `csv:"equipment" json:"equipment"`
}
