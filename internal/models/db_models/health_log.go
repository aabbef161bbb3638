package db_models

type HealthLog struct {
	BaseModel
	UserID   string  `gorm:"index" json:"user_id"`
	Date     string  `json:"date"`
	Weight   float64 `json:"weight"`
	Sleep    float64 `json:"sleep"`
	Water    float64 `json:"water"`
	Mood     string  `json:"mood"`
	Symptoms string  `json:"symptoms"`
	Notes    string  `json:"notes"`
}
