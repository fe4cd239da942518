package types

// NutritionInfo carries the optional per-serving nutrition block on food
// products. All fields are free-form strings except calories.
type NutritionInfo struct {
	ServingSize *string `json:"serving_size,omitempty"`
	Calories    *int    `json:"calories,omitempty"`
	Protein     *string `json:"protein,omitempty"`
	Carbs       *string `json:"carbs,omitempty"`
	Fat         *string `json:"fat,omitempty"`
	Fiber       *string `json:"fiber,omitempty"`
	Sodium      *string `json:"sodium,omitempty"`
}
