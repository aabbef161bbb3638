package db_models

type User struct {
	BaseModel
	Name         string   `json:"name"`
	Email        string   `gorm:"unique" json:"email"`
	PasswordHash string   `json:"-"`
	Age          int      `json:"age"`
	Gender       string   `json:"gender"`
	IsAdmin      bool     `json:"is_admin"`
	Height       *float64 `json:"height,omitempty"`
	Weight       *float64 `json:"weight,omitempty"`
}

// HasProfile reports whether the user completed the body-metrics part
// of their profile. Surfaced at login.
func (u *User) HasProfile() bool {
	return u.Height != nil && u.Weight != nil
}
