package entity

import "time"

// Acciones registradas en la bitácora de usuario.
const (
	ActivityLogin          = "login"
	ActivityLogout         = "logout"
	ActivitySignup         = "signup"
	ActivityCreateSchedule = "create_schedule"
	ActivityUpdateStatus   = "update_status"
	ActivityAddLocation    = "add_location"
	ActivityDeleteLocation = "delete_location"
	ActivityUploadFile     = "upload_file"
	ActivityDownloadFile   = "download_file"
)

// ActivityRecord entrada inmutable de la bitácora. Solo se inserta, nunca se
// actualiza ni se borra.
type ActivityRecord struct {
	ID        string
	UserEmail string
	Action    string
	Details   string
	Timestamp time.Time
}
