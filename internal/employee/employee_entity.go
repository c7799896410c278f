package employee

import (
	"time"

	"go-shiftplan/internal/shared/jornada"
)

type Employee struct {
	ID           string       `gorm:"type:varchar(64);primaryKey"`
	FullName     string       `gorm:"type:varchar(200)"`
	ContractType jornada.Type `gorm:"type:varchar(20)"`
	Role         string       `gorm:"type:varchar(120)"`
	Active       bool
	Sede         string `gorm:"type:varchar(120);index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
