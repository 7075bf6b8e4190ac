package utils

import (
	"testing"

	"naijafit/models"

	"github.com/stretchr/testify/assert"
)

func TestScaleNutrition(t *testing.T) {
	per100g := models.Nutrition{
		Calories: 130, Protein: 2.7, Carbs: 28, Fats: 0.3,
		Fiber: 0.4, Iron: 0.2, VitaminA: 0,
	}

	scaled := ScaleNutrition(per100g, 250)
	assert.InDelta(t, 325.0, scaled.Calories, 1e-9)
	assert.InDelta(t, 6.75, scaled.Protein, 1e-9)
	assert.InDelta(t, 70.0, scaled.Carbs, 1e-9)
	assert.InDelta(t, 0.75, scaled.Fats, 1e-9)

	same := ScaleNutrition(per100g, 100)
	assert.Equal(t, per100g, same)

	zero := ScaleNutrition(per100g, 0)
	assert.Equal(t, models.Nutrition{}, zero)
}
