package request_models

type CreateHealthLogRequest struct {
	Date     string  `json:"date" binding:"required"`
	Weight   float64 `json:"weight"`
	Sleep    float64 `json:"sleep"`
	Water    float64 `json:"water"`
	Mood     string  `json:"mood"`
	Symptoms string  `json:"symptoms"`
	Notes    string  `json:"notes"`
}
