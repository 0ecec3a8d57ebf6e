package entity

import "time"

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"required,email"`
}

// UserEvent is the payload published to the user topic whenever a record
// is created, updated or deleted.
type UserEvent struct {
	Action string    `json:"action"`
	User   User      `json:"user"`
	Time   time.Time `json:"time"`
}
