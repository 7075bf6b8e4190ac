package controllers

import (
	"net/http"

	"naijafit/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{Foods: foods}
}

func (fc *FoodController) ListFoods(c *gin.Context) {
	c.JSON(http.StatusOK, fc.Foods.List())
}

func (fc *FoodController) SearchFoods(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q query parameter required"})
		return
	}
	c.JSON(http.StatusOK, fc.Foods.Search(q))
}
