package dto

import "time"

// ActivityRecordDTO entrada de la bitácora de usuario.
type ActivityRecordDTO struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
