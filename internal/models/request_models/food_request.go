package request_models

type CreateFoodRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	Dosha       string `json:"dosha"`
	Rasa        string `json:"rasa"`
	Virya       string `json:"virya"`
	Benefits    string `json:"benefits"`
	Calories    int    `json:"calories"`
}

// UpdateFoodRequest carries a partial record; only non-nil fields are
// applied.
type UpdateFoodRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Dosha       *string `json:"dosha"`
	Rasa        *string `json:"rasa"`
	Virya       *string `json:"virya"`
	Benefits    *string `json:"benefits"`
	Calories    *int    `json:"calories"`
}
