package entity

import (
	"github.com/google/uuid"
)

type Feedback struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	Message string    `db:"message"`
	Rating  int       `db:"rating"`
}
