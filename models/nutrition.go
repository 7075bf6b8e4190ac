package models

// Nutrition is the absolute macro/micro-nutrient bundle for a food portion
// (not per-100g — scaling happens before a Nutrition ever reaches a meal).
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	Iron     float64 `json:"iron"`
	VitaminA float64 `json:"vitamin_a"`
}

func (n Nutrition) Add(o Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fats:     n.Fats + o.Fats,
		Fiber:    n.Fiber + o.Fiber,
		Iron:     n.Iron + o.Iron,
		VitaminA: n.VitaminA + o.VitaminA,
	}
}
