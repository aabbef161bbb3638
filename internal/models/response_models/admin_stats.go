package response_models

type AdminStats struct {
	Users      int64 `json:"users"`
	Foods      int64 `json:"foods"`
	HealthLogs int64 `json:"health_logs"`
}
