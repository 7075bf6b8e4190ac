package services

import (
	"strings"

	"naijafit/models"
)

// Food is a catalog entry with per-100g macros. The catalog is the external
// food database collaborator; the stats engine only ever sees the scaled
// snapshots stored on meals.
type Food struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Per100g  models.Nutrition `json:"per_100g"`
}

type FoodService struct {
	foods []Food
	byID  map[string]Food
}

func NewFoodService() *FoodService {
	s := &FoodService{foods: nigerianFoods}
	s.byID = make(map[string]Food, len(s.foods))
	for _, f := range s.foods {
		s.byID[f.ID] = f
	}
	return s
}

func (s *FoodService) List() []Food {
	out := make([]Food, len(s.foods))
	copy(out, s.foods)
	return out
}

func (s *FoodService) Get(id string) (Food, bool) {
	f, ok := s.byID[id]
	return f, ok
}

// Search does a case-insensitive substring match over names and categories.
func (s *FoodService) Search(query string) []Food {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Food
	for _, f := range s.foods {
		if strings.Contains(strings.ToLower(f.Name), q) ||
			strings.Contains(strings.ToLower(f.Category), q) {
			out = append(out, f)
		}
	}
	return out
}

var nigerianFoods = []Food{
	{ID: "jollof-rice", Name: "Jollof Rice", Category: "rice",
		Per100g: models.Nutrition{Calories: 150, Protein: 3.2, Carbs: 26.5, Fats: 3.8, Fiber: 1.1, Iron: 0.9, VitaminA: 45}},
	{ID: "egusi-soup", Name: "Egusi Soup", Category: "soup",
		Per100g: models.Nutrition{Calories: 178, Protein: 7.8, Carbs: 6.2, Fats: 14.5, Fiber: 2.4, Iron: 2.1, VitaminA: 120}},
	{ID: "pounded-yam", Name: "Pounded Yam", Category: "swallow",
		Per100g: models.Nutrition{Calories: 118, Protein: 1.5, Carbs: 27.9, Fats: 0.2, Fiber: 1.7, Iron: 0.5, VitaminA: 7}},
	{ID: "akamu-pap", Name: "Akamu (Pap)", Category: "breakfast",
		Per100g: models.Nutrition{Calories: 71, Protein: 1.8, Carbs: 16.2, Fats: 0.4, Fiber: 1.1, Iron: 0.5, VitaminA: 10}},
	{ID: "akara", Name: "Akara", Category: "breakfast",
		Per100g: models.Nutrition{Calories: 166, Protein: 8.2, Carbs: 12.1, Fats: 9.8, Fiber: 4.6, Iron: 2.2, VitaminA: 6}},
	{ID: "moi-moi", Name: "Moi Moi", Category: "protein",
		Per100g: models.Nutrition{Calories: 102, Protein: 7.5, Carbs: 11.8, Fats: 3.1, Fiber: 3.9, Iron: 1.8, VitaminA: 35}},
	{ID: "suya", Name: "Suya", Category: "protein",
		Per100g: models.Nutrition{Calories: 215, Protein: 26.1, Carbs: 3.5, Fats: 10.9, Fiber: 0.8, Iron: 3.2, VitaminA: 12}},
	{ID: "pepper-soup", Name: "Pepper Soup", Category: "soup",
		Per100g: models.Nutrition{Calories: 95, Protein: 11.2, Carbs: 3.1, Fats: 4.2, Fiber: 0.6, Iron: 1.5, VitaminA: 25}},
	{ID: "dodo", Name: "Fried Plantain (Dodo)", Category: "side",
		Per100g: models.Nutrition{Calories: 181, Protein: 1.5, Carbs: 29.6, Fats: 7.1, Fiber: 2.2, Iron: 0.7, VitaminA: 90}},
	{ID: "ewa-agoyin", Name: "Ewa Agoyin", Category: "beans",
		Per100g: models.Nutrition{Calories: 141, Protein: 8.4, Carbs: 18.7, Fats: 3.9, Fiber: 6.1, Iron: 2.6, VitaminA: 5}},
	{ID: "puff-puff", Name: "Puff Puff", Category: "snack",
		Per100g: models.Nutrition{Calories: 302, Protein: 5.1, Carbs: 45.3, Fats: 11.2, Fiber: 1.3, Iron: 1.1, VitaminA: 8}},
	{ID: "eba", Name: "Eba", Category: "swallow",
		Per100g: models.Nutrition{Calories: 112, Protein: 0.9, Carbs: 26.8, Fats: 0.3, Fiber: 1.5, Iron: 0.4, VitaminA: 2}},
}
