package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Albane192/GL02-JSFORCE/internal/csvio"
	"github.com/Albane192/GL02-JSFORCE/internal/scheduler"
)

// Program parameters
var cfg = scheduler.NewDefaultConfiguration()

var (
	store  *csvio.FileStore
	engine *scheduler.Scheduler
)

func main() {
	store = csvio.NewFileStore(cfg.DataDir)
	engine = scheduler.New(store)

	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/rooms", handleListRooms)
	r.GET("/rooms/best", handleFindBestRoom)
	r.GET("/rooms/:id", handleGetRoom)
	r.GET("/reservations", handleListReservations)
	r.POST("/reservations", handleCreateReservation)
	r.DELETE("/reservations/:id", handleDeleteReservation)
	r.GET("/occupancy", handleOccupancy)
	r.POST("/import", handleImportCRU)
	r.GET("/cru/conflicts", handleCruConflicts)
	r.GET("/cru/courses/:code", handleCruCourse)
	r.GET("/cru/rooms/:id", handleCruRoom)

	if err := r.Run(cfg.ListenAddr); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}
