package utils

import "naijafit/models"

// ScaleNutrition converts per-100g macro values into the absolute nutrition
// for a portion of the given gram weight.
func ScaleNutrition(per100g models.Nutrition, grams float64) models.Nutrition {
	f := grams / 100.0
	return models.Nutrition{
		Calories: per100g.Calories * f,
		Protein:  per100g.Protein * f,
		Carbs:    per100g.Carbs * f,
		Fats:     per100g.Fats * f,
		Fiber:    per100g.Fiber * f,
		Iron:     per100g.Iron * f,
		VitaminA: per100g.VitaminA * f,
	}
}
