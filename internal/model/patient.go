package model

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a clinic patient record. RegistrationNo is the human-facing
// sequential number printed on paper files.
type Patient struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RegistrationNo int       `gorm:"uniqueIndex;not null"`
	Name           string    `gorm:"not null;index"`
	FatherName     string
	Age            int
	Gender         string `gorm:"type:varchar(10)"`
	Phone          string
	Address        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
