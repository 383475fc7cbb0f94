package main

import (
	"fmt"
	"os"

	"github.com/Albane192/GL02-JSFORCE/internal/auth"
	"github.com/Albane192/GL02-JSFORCE/internal/csvio"
	"github.com/Albane192/GL02-JSFORCE/internal/scheduler"
)

// Program parameters
var cfg = scheduler.NewDefaultConfiguration()

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	store := csvio.NewFileStore(cfg.DataDir)
	engine := scheduler.New(store)
	users := auth.NewDirectory(store, cfg.DataDir)

	command, args := os.Args[1], os.Args[2:]

	var err error
	switch command {
	case "rooms":
		err = cmdRooms(engine)
	case "reservations":
		err = cmdReservations(engine)
	case "reserve":
		err = cmdReserve(engine, users, args)
	case "delete":
		err = cmdDelete(engine, users, args)
	case "room-info":
		err = cmdRoomInfo(engine, args)
	case "course-info":
		err = cmdCourseInfo(engine, args)
	case "find-room":
		err = cmdFindRoom(engine, args)
	case "stats":
		err = cmdStats(engine, users, args)
	case "import":
		err = cmdImport(store, users, args)
	case "conflicts":
		err = cmdConflicts(store, users)
	case "cru-course":
		err = cmdCruCourse(store, users, args)
	case "cru-room":
		err = cmdCruRoom(store, users, args)
	case "cru-ical":
		err = cmdCruICal(store, users, args)
	case "export-ical":
		err = cmdExportICal(engine, users, args)
	case "export-cru":
		err = cmdExportCRU(engine, users, args)
	case "login":
		err = cmdLogin(users, args)
	case "whoami":
		err = cmdWhoAmI(users)
	case "help":
		usage()
	default:
		fmt.Fprintln(os.Stderr, "unknown command:", command)
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`Usage: sru <command> [args]

Reservations:
  rooms                                        list rooms
  reservations                                 list reservations
  reserve <room> <teacher> <group> <course> <start> <end>
  delete <id>                                  delete a reservation (admin)
  room-info <room> <start> <end>               room details and bookings
  course-info <course>                         course details and bookings
  find-room <capacity> <start> <end>           best-fit free room
  stats <start> <end>                          occupancy rates (admin)

CRU timetable data:
  import <file>                                import a CRU file (admin)
  conflicts                                    double-booked rooms in imported data (admin)
  cru-course <code>                            imported course details
  cru-room <room>                              imported slots held in a room
  cru-ical <code> <from> <to> [file]           weekly iCalendar for an imported course

Exports:
  export-ical <id> [file]                      one reservation as iCalendar
  export-cru [file]                            all reservations as CRU (admin)

Session:
  login <user>                                 record the current user
  whoami                                       show the current user

Timestamps use the 2006-01-02T15:04 layout; dates use 2006-01-02.`)
}
