package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/Albane192/GL02-JSFORCE/pkg/model"
)

// ReservationsCRU renders reservations in the flat CRU exchange
// notation, one semicolon-delimited record per line.
func ReservationsCRU(reservations []*model.Reservation) string {
	var b strings.Builder
	for _, r := range reservations {
		fmt.Fprintf(&b, "RESERVATION;ID=%d;ROOM=%s;TEACHER=%s;GROUP=%s;COURSE=%s;START=%s;END=%s\n",
			r.ID, r.Room, r.Teacher, r.Group, r.Course, r.Start, r.End)
	}
	return b.String()
}

func WriteReservationsCRU(reservations []*model.Reservation, path string) error {
	return os.WriteFile(path, []byte(ReservationsCRU(reservations)), 0o644)
}
