package model

// Course is reference data describing a teaching unit that
// reservations point at through their Course field.
type Course struct {
	ID      string `csv:"course_id" json:"id"`
	Title   string `csv:"title" json:"title"`
	Teacher string `csv:"teacher" json:"teacher"`
	Group   string `csv:"group" json:"group"`
	Type    string `csv:"type" json:"type,omitempty"`
}
