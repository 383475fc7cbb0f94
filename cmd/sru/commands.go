package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Albane192/GL02-JSFORCE/internal/auth"
	"github.com/Albane192/GL02-JSFORCE/internal/cru"
	"github.com/Albane192/GL02-JSFORCE/internal/csvio"
	"github.com/Albane192/GL02-JSFORCE/internal/export"
	"github.com/Albane192/GL02-JSFORCE/internal/scheduler"
	"github.com/Albane192/GL02-JSFORCE/pkg/model"
)

func requireUser(users *auth.Directory, roles ...string) (*auth.Session, error) {
	session, err := users.Current()
	if err != nil {
		return nil, err
	}
	if err := auth.Require(session, roles...); err != nil {
		return nil, err
	}
	return session, nil
}

func capacityLabel(capacity *int) string {
	if capacity == nil {
		return "-"
	}
	return strconv.Itoa(*capacity)
}

func cmdRooms(engine *scheduler.Scheduler) error {
	rooms, err := engine.Rooms()
	if err != nil {
		return err
	}
	for _, r := range rooms {
		fmt.Printf("%s (capacity %d) [%s]\n", r.ID, r.Capacity, strings.Join(r.Equipment, ", "))
	}
	return nil
}

func cmdReservations(engine *scheduler.Scheduler) error {
	reservations, err := engine.Reservations()
	if err != nil {
		return err
	}
	if len(reservations) == 0 {
		fmt.Println("No reservations.")
		return nil
	}
	for _, r := range reservations {
		printReservation(r)
	}
	return nil
}

func printReservation(r *model.Reservation) {
	fmt.Printf("#%d room=%s teacher=%s group=%s course=%s %s -> %s\n",
		r.ID, r.Room, r.Teacher, r.Group, r.Course, r.Start, r.End)
}

func cmdReserve(engine *scheduler.Scheduler, users *auth.Directory, args []string) error {
	if _, err := requireUser(users); err != nil {
		return err
	}
	if len(args) != 6 {
		return errors.New("usage: sru reserve <room> <teacher> <group> <course> <start> <end>")
	}
	res, err := engine.CreateReservation(scheduler.ReservationSpec{
		Room:    args[0],
		Teacher: args[1],
		Group:   args[2],
		Course:  args[3],
		Start:   args[4],
		End:     args[5],
	})
	if err != nil {
		return err
	}
	fmt.Print("Reservation created: ")
	printReservation(res)
	return nil
}

func cmdDelete(engine *scheduler.Scheduler, users *auth.Directory, args []string) error {
	if _, err := requireUser(users, auth.RoleAdmin); err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: sru delete <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid reservation id: %s", args[0])
	}
	removed, err := engine.DeleteReservation(id)
	if err != nil {
		return err
	}
	fmt.Print("Reservation deleted: ")
	printReservation(removed)
	return nil
}

func cmdRoomInfo(engine *scheduler.Scheduler, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: sru room-info <room> <start> <end>")
	}
	room, err := engine.RoomByID(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Room %s\n", room.ID)
	fmt.Printf("  Capacity: %d\n", room.Capacity)
	fmt.Printf("  Equipment: %s\n", strings.Join(room.Equipment, ", "))
	fmt.Println()

	fmt.Printf("Bookings between %s and %s:\n", args[1], args[2])
	reservations, err := engine.ReservationsForRoom(room.ID, args[1], args[2])
	if err != nil {
		return err
	}
	if len(reservations) == 0 {
		fmt.Println("  No reservations.")
		return nil
	}
	for _, r := range reservations {
		fmt.Printf("  #%d course=%s teacher=%s group=%s %s -> %s\n",
			r.ID, r.Course, r.Teacher, r.Group, r.Start, r.End)
	}
	return nil
}

func cmdCourseInfo(engine *scheduler.Scheduler, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: sru course-info <course>")
	}
	course, err := engine.CourseByID(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Course %s - %s\n", course.ID, course.Title)
	fmt.Printf("  Teacher: %s\n", course.Teacher)
	fmt.Printf("  Group: %s\n", course.Group)
	if course.Type != "" {
		fmt.Printf("  Type: %s\n", course.Type)
	}
	fmt.Println()

	reservations, err := engine.ReservationsForCourse(course.ID)
	if err != nil {
		return err
	}
	fmt.Println("Booked slots:")
	if len(reservations) == 0 {
		fmt.Println("  No booked slots.")
		return nil
	}
	for _, r := range reservations {
		fmt.Printf("  #%d room=%s %s -> %s\n", r.ID, r.Room, r.Start, r.End)
	}
	return nil
}

func cmdFindRoom(engine *scheduler.Scheduler, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: sru find-room <capacity> <start> <end>")
	}
	capacity, err := strconv.Atoi(args[0])
	if err != nil || capacity <= 0 {
		return fmt.Errorf("invalid capacity: %s", args[0])
	}
	room, err := engine.FindBestRoom(capacity, args[1], args[2])
	if err != nil {
		return err
	}
	if room == nil {
		fmt.Println("No available room has sufficient capacity for this window.")
		return nil
	}
	fmt.Printf("Best available room: %s\n", room.ID)
	fmt.Printf("  Capacity: %d\n", room.Capacity)
	fmt.Printf("  Equipment: %s\n", strings.Join(room.Equipment, ", "))
	return nil
}

func cmdStats(engine *scheduler.Scheduler, users *auth.Directory, args []string) error {
	if _, err := requireUser(users, auth.RoleAdmin); err != nil {
		return err
	}
	if len(args) != 2 {
		return errors.New("usage: sru stats <start> <end>")
	}
	stats, err := engine.Occupancy(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("Room occupancy between %s and %s:\n\n", args[0], args[1])
	for _, s := range stats {
		fmt.Printf("%s : %.1f%%\n", s.Room, s.Rate)
		if bar := int(math.Round(s.Rate / 5)); bar > 0 {
			fmt.Printf("  %s\n", strings.Repeat("#", bar))
		}
		fmt.Println()
	}
	return nil
}

func cmdImport(store *csvio.FileStore, users *auth.Directory, args []string) error {
	if _, err := requireUser(users, auth.RoleAdmin); err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: sru import <file>")
	}
	result, err := cru.ImportFile(args[0], store)
	if err != nil {
		return err
	}
	fmt.Printf("CRU import finished from %s: %d courses, %d slot(s).\n",
		result.File, result.CoursesCount, result.SlotsCount)
	fmt.Printf("Stored under %s: %s and %s\n", store.Dir(), csvio.CruCoursesFile, csvio.CruSlotsFile)
	return nil
}

func cmdConflicts(store *csvio.FileStore, users *auth.Directory) error {
	if _, err := requireUser(users, auth.RoleAdmin); err != nil {
		return err
	}
	slots, err := store.ImportedSlots()
	if err != nil {
		return err
	}
	conflicts := cru.DetectConflicts(slots)
	if len(conflicts) == 0 {
		fmt.Println("No conflicts detected in the imported data (per room/day/slot).")
		return nil
	}
	fmt.Printf("Conflicts detected in the imported data: %d\n\n", len(conflicts))
	for i, c := range conflicts {
		fmt.Printf("Conflict %d - room %s, %s (%s)\n", i+1, c.Room, c.Day, cru.DayName(c.Day))
		fmt.Printf("  Slot 1: course=%s %s-%s type=%s cap=%s\n",
			c.First.Course, c.First.Start, c.First.End, c.First.TypeCode, capacityLabel(c.First.Capacity))
		fmt.Printf("  Slot 2: course=%s %s-%s type=%s cap=%s\n",
			c.Second.Course, c.Second.Start, c.Second.End, c.Second.TypeCode, capacityLabel(c.Second.Capacity))
		fmt.Println()
	}
	return nil
}

func cmdCruCourse(store *csvio.FileStore, users *auth.Directory, args []string) error {
	if _, err := requireUser(users); err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: sru cru-course <code>")
	}
	course, slots, err := cru.CourseInfo(store, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("CRU course %s\n", course.Code)
	fmt.Printf("  Slots: %d\n", course.SlotsCount)
	fmt.Printf("  Max capacity: %d\n", course.MaxCapacity)
	fmt.Println()
	fmt.Println("Slots:")
	if len(slots) == 0 {
		fmt.Println("  No slots found.")
		return nil
	}
	for _, s := range slots {
		fmt.Printf("  %s %s-%s room=%s type=%s cap=%s subgroup=%s\n",
			s.Day, s.Start, s.End, s.Room, s.TypeCode, capacityLabel(s.Capacity), orDash(s.Subgroup))
	}
	return nil
}

func cmdCruRoom(store *csvio.FileStore, users *auth.Directory, args []string) error {
	if _, err := requireUser(users); err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: sru cru-room <room>")
	}
	slots, maxCapacity, err := cru.RoomInfo(store, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("CRU room %s\n", args[0])
	fmt.Printf("  Max observed capacity: %d\n", maxCapacity)
	fmt.Println()
	fmt.Println("Slots:")
	if len(slots) == 0 {
		fmt.Println("  No slots in the imported data.")
		return nil
	}
	for _, s := range slots {
		fmt.Printf("  course=%s %s %s-%s type=%s cap=%s subgroup=%s\n",
			s.Course, s.Day, s.Start, s.End, s.TypeCode, capacityLabel(s.Capacity), orDash(s.Subgroup))
	}
	return nil
}

func cmdCruICal(store *csvio.FileStore, users *auth.Directory, args []string) error {
	if _, err := requireUser(users); err != nil {
		return err
	}
	if len(args) != 3 && len(args) != 4 {
		return errors.New("usage: sru cru-ical <code> <from> <to> [file]")
	}
	course, slots, err := cru.CourseInfo(store, args[0])
	if err != nil {
		return err
	}
	if len(slots) == 0 {
		return fmt.Errorf("no imported slots for course %s", course.Code)
	}
	outFile := course.Code + ".ics"
	if len(args) == 4 {
		outFile = args[3]
	}
	count, err := export.WriteCourseICal(course.Code, slots, args[1], args[2], outFile)
	if err != nil {
		return err
	}
	fmt.Printf("iCalendar generated for course %s between %s and %s:\n", course.Code, args[1], args[2])
	fmt.Printf("  File: %s\n", outFile)
	fmt.Printf("  Events: %d\n", count)
	return nil
}

func cmdExportICal(engine *scheduler.Scheduler, users *auth.Directory, args []string) error {
	if _, err := requireUser(users); err != nil {
		return err
	}
	if len(args) != 1 && len(args) != 2 {
		return errors.New("usage: sru export-ical <id> [file]")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid reservation id: %s", args[0])
	}
	res, err := engine.ReservationByID(id)
	if err != nil {
		return err
	}
	outFile := cfg.ExportICalFile
	if len(args) == 2 {
		outFile = args[1]
	}
	if err := export.WriteReservationICal(res, outFile); err != nil {
		return err
	}
	fmt.Println("iCalendar file written:", outFile)
	return nil
}

func cmdExportCRU(engine *scheduler.Scheduler, users *auth.Directory, args []string) error {
	if _, err := requireUser(users, auth.RoleAdmin); err != nil {
		return err
	}
	if len(args) > 1 {
		return errors.New("usage: sru export-cru [file]")
	}
	reservations, err := engine.Reservations()
	if err != nil {
		return err
	}
	outFile := cfg.ExportCRUFile
	if len(args) == 1 {
		outFile = args[0]
	}
	if err := export.WriteReservationsCRU(reservations, outFile); err != nil {
		return err
	}
	fmt.Println("CRU file written:", outFile)
	return nil
}

func cmdLogin(users *auth.Directory, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: sru login <user>")
	}
	user, err := users.Login(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Role)
	return nil
}

func cmdWhoAmI(users *auth.Directory) error {
	session, err := users.Current()
	if errors.Is(err, auth.ErrNotLoggedIn) {
		fmt.Println("No user logged in.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("Current user: %s (%s) [id=%s]\n", session.User.Name, session.User.Role, session.User.ID)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
