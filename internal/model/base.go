package model

import (
	"time"

	"github.com/google/uuid"
)

// Base holds the identity and creation timestamp shared by all records.
type Base struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
