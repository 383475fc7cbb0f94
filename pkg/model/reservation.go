package model

// Reservation books a room for a teacher and a group over a time
// interval. Start and End are wall-clock timestamps in the
// "2006-01-02T15:04" layout; identifiers are assigned as
// max-existing+1 and never reused.
type Reservation struct {
	ID      int    `csv:"id" json:"id"`
	Room    string `csv:"room" json:"room"`
	Teacher string `csv:"teacher" json:"teacher"`
	Group   string `csv:"group" json:"group"`
	Course  string `csv:"course" json:"course"`
	Start   string `csv:"start" json:"start"`
	End     string `csv:"end" json:"end"`
}
