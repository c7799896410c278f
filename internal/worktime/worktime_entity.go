package worktime

import "time"

// Config holds the monthly hour requirement of a sede for one year.
type Config struct {
	Sede                 string  `gorm:"type:varchar(120);primaryKey"`
	Year                 int     `gorm:"primaryKey;autoIncrement:false"`
	FullTimeMonthlyHours float64 `gorm:"not null"`
	PartTimeMonthlyHours float64 `gorm:"not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (Config) TableName() string {
	return "work_time_configs"
}
