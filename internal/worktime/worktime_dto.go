package worktime

import "time"

type SaveConfigRequest struct {
	Sede                 string  `json:"sede" binding:"required"`
	Year                 int     `json:"year" binding:"required"`
	FullTimeMonthlyHours float64 `json:"full_time_monthly_hours" binding:"required,gt=0"`
	PartTimeMonthlyHours float64 `json:"part_time_monthly_hours" binding:"required,gt=0"`
}

type ConfigResponse struct {
	Sede                 string    `json:"sede"`
	Year                 int       `json:"year"`
	FullTimeMonthlyHours float64   `json:"full_time_monthly_hours"`
	PartTimeMonthlyHours float64   `json:"part_time_monthly_hours"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (r ConfigResponse) ToEntity() Config {
	return Config{
		Sede:                 r.Sede,
		Year:                 r.Year,
		FullTimeMonthlyHours: r.FullTimeMonthlyHours,
		PartTimeMonthlyHours: r.PartTimeMonthlyHours,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func (r ConfigResponse) ToRequest() SaveConfigRequest {
	return SaveConfigRequest{
		Sede:                 r.Sede,
		Year:                 r.Year,
		FullTimeMonthlyHours: r.FullTimeMonthlyHours,
		PartTimeMonthlyHours: r.PartTimeMonthlyHours,
	}
}
