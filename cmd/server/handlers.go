package main

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Albane192/GL02-JSFORCE/internal/cru"
	"github.com/Albane192/GL02-JSFORCE/internal/scheduler"
)

func handleListRooms(ctx *gin.Context) {
	rooms, err := engine.Rooms()
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

func handleGetRoom(ctx *gin.Context) {
	room, err := engine.RoomByID(ctx.Param("id"))
	if errors.Is(err, scheduler.ErrNotFound) {
		ctx.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, room)
}

func handleFindBestRoom(ctx *gin.Context) {
	capacity, err := strconv.Atoi(ctx.Query("capacity"))
	if err != nil || capacity <= 0 {
		ctx.String(http.StatusBadRequest, "invalid capacity")
		return
	}
	room, err := engine.FindBestRoom(capacity, ctx.Query("start"), ctx.Query("end"))
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	if room == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no available room with sufficient capacity"})
		return
	}
	ctx.JSON(http.StatusOK, room)
}

func handleListReservations(ctx *gin.Context) {
	reservations, err := engine.Reservations()
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

type reservationRequest struct {
	Room    string `json:"room" binding:"required"`
	Teacher string `json:"teacher" binding:"required"`
	Group   string `json:"group" binding:"required"`
	Course  string `json:"course" binding:"required"`
	Start   string `json:"start" binding:"required"`
	End     string `json:"end" binding:"required"`
}

func handleCreateReservation(ctx *gin.Context) {
	var req reservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	res, err := engine.CreateReservation(scheduler.ReservationSpec{
		Room:    req.Room,
		Teacher: req.Teacher,
		Group:   req.Group,
		Course:  req.Course,
		Start:   req.Start,
		End:     req.End,
	})
	if err != nil {
		var conflict *scheduler.ConflictError
		if errors.As(err, &conflict) {
			ctx.JSON(http.StatusConflict, gin.H{
				"error":  conflict.Error(),
				"reason": conflict.Reason.String(),
				"with":   conflict.With,
			})
			return
		}
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	ctx.JSON(http.StatusCreated, res)
}

func handleDeleteReservation(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.String(http.StatusBadRequest, "invalid reservation id")
		return
	}
	removed, err := engine.DeleteReservation(id)
	if errors.Is(err, scheduler.ErrNotFound) {
		ctx.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, removed)
}

func handleOccupancy(ctx *gin.Context) {
	stats, err := engine.Occupancy(ctx.Query("start"), ctx.Query("end"))
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"occupancy": stats})
}

func handleImportCRU(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	path := filepath.Join(cfg.UploadDir, uuid.NewString()+".cru")
	if err := ctx.SaveUploadedFile(file, path); err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}
	result, err := cru.ImportFile(path, store)
	if err != nil {
		ctx.String(http.StatusInternalServerError, err.Error())
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func handleCruConflicts(ctx *gin.Context) {
	slots, err := store.ImportedSlots()
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}
	conflicts := cru.DetectConflicts(slots)
	ctx.JSON(http.StatusOK, gin.H{"count": len(conflicts), "conflicts": conflicts})
}

func handleCruCourse(ctx *gin.Context) {
	course, slots, err := cru.CourseInfo(store, ctx.Param("code"))
	if errors.Is(err, cru.ErrNotFound) {
		ctx.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"course": course, "slots": slots})
}

func handleCruRoom(ctx *gin.Context) {
	slots, maxCapacity, err := cru.RoomInfo(store, ctx.Param("id"))
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"room":        ctx.Param("id"),
		"maxCapacity": maxCapacity,
		"slots":       slots,
	})
}
