package routes

import (
	"naijafit/controllers"
	"naijafit/middlewares"
	"naijafit/services"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Stats *services.StatsService
	Meals *services.MealService
	Foods *services.FoodService
	Port  *services.PortabilityService
	Hub   *services.RealtimeHub
	Push  *services.PushService
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	authCtl := controllers.NewAuthController(d.Stats)
	userCtl := controllers.NewUserController(d.Stats)
	statsCtl := controllers.NewStatsController(d.Stats)
	mealCtl := controllers.NewMealController(d.Meals)
	foodCtl := controllers.NewFoodController(d.Foods)
	portCtl := controllers.NewPortabilityController(d.Port)
	rtCtl := controllers.NewRealtimeController(d.Hub)
	devCtl := controllers.NewDeviceController(d.Push)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", userCtl.GetProfile)
		user.PUT("/profile", userCtl.UpdateProfile)
		user.GET("/stats", statsCtl.GetStats)
		user.GET("/achievements", statsCtl.GetAchievements)
		user.GET("/export", portCtl.Export)
		user.POST("/import", portCtl.Import)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("", mealCtl.LogMeal)
		meals.GET("", mealCtl.ListMeals)
		meals.GET("/recent", mealCtl.RecentMeals)
		meals.GET("/by-date", mealCtl.MealsByDate)
		meals.GET("/:id", mealCtl.GetMeal)
		meals.DELETE("/:id", mealCtl.DeleteMeal)
	}

	foods := r.Group("/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.GET("", foodCtl.ListFoods)
		foods.GET("/search", foodCtl.SearchFoods)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/stats", rtCtl.StatsWS)
	}

	devices := r.Group("/devices")
	devices.Use(middlewares.AuthMiddleware())
	{
		devices.POST("", devCtl.Register)
	}

	return r
}
