package response_models

import "annapurna/internal/models/db_models"

// UserResponse is the sanitized profile view. The password hash never
// crosses this boundary.
type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
	IsAdmin bool   `json:"is_admin"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// LoginResponse additionally reports whether the body-metrics profile
// is filled in, so the frontend can route to onboarding.
type LoginResponse struct {
	Token string `json:"token"`
	User  struct {
		UserResponse
		HasProfile bool `json:"has_profile"`
	} `json:"user"`
}

func SanitizeUser(u *db_models.User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Age:     u.Age,
		Gender:  u.Gender,
		IsAdmin: u.IsAdmin,
	}
}

func NewLoginResponse(token string, u *db_models.User) LoginResponse {
	resp := LoginResponse{Token: token}
	resp.User.UserResponse = SanitizeUser(u)
	resp.User.HasProfile = u.HasProfile()
	return resp
}
