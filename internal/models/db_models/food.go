package db_models

// Food is a catalog entry with its Ayurvedic metadata.
type Food struct {
	BaseModel
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Dosha       string `json:"dosha"`
	Rasa        string `json:"rasa"`
	Virya       string `json:"virya"`
	Benefits    string `json:"benefits"`
	Calories    int    `json:"calories"`
}
