package model

// ImportedCourse aggregates the slots of one course found in a CRU
// timetable file. The whole collection is regenerated on each import.
type ImportedCourse struct {
	Code        string `csv:"code" json:"code"`
	SlotsCount  int    `csv:"slots_count" json:"slotsCount"`
	MaxCapacity int    `csv:"max_capacity" json:"maxCapacity"`
}

// ImportedSlot is one weekly time slot of a CRU course. Day is a CRU
// day code (L, MA, ME, J, V, S, D); Start and End are "HH:MM"
// wall-clock times without a date. Capacity is nil when the source
// line carried no numeric P= token.
type ImportedSlot struct {
	Course   string `csv:"course" json:"course"`
	LineNo   string `csv:"line_no" json:"lineNo"`
	TypeCode string `csv:"type_code" json:"typeCode"`
	Capacity *int   `csv:"capacity" json:"capacity"`
	Day      string `csv:"day" json:"day"`
	Start    string `csv:"start" json:"start"`
	End      string `csv:"end" json:"end"`
	Subgroup string `csv:"subgroup" json:"subgroup,omitempty"`
	Room     string `csv:"room" json:"room"`
}

// Conflict pairs two imported slots double-booked in the same room
// on the same day. Computed on demand, never persisted.
type Conflict struct {
	Room   string        `json:"room"`
	Day    string        `json:"day"`
	First  *ImportedSlot `json:"first"`
	Second *ImportedSlot `json:"second"`
}
