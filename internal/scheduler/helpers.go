package scheduler

// Configuration holds the runtime file locations shared by the
// command-line and server entry points.
type Configuration struct {
	DataDir        string
	UploadDir      string
	ExportICalFile string
	ExportCRUFile  string
	ListenAddr     string
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		DataDir:        "./data",
		UploadDir:      "./data/uploads",
		ExportICalFile: "reservation.ics",
		ExportCRUFile:  "reservations.cru",
		ListenAddr:     ":8080",
	}
}
