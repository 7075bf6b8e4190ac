package main

import (
	"naijafit/config"
	"naijafit/routes"
	"naijafit/services"
	"naijafit/utils"

	"go.uber.org/zap"
)

func main() {
	if err := utils.InitLogger(); err != nil {
		panic(err)
	}
	log := utils.L()

	db := config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(db)
	if err != nil {
		log.Warn("push service unavailable", zap.Error(err))
		push = nil
	}

	statsSvc := services.NewStatsService(db, log)
	foodSvc := services.NewFoodService()
	mealSvc := services.NewMealService(db, foodSvc, statsSvc, log)
	portSvc := services.NewPortabilityService(db, statsSvc, log)

	services.InitStatsEvents(db, hub, push)

	repair := services.NewStatsRepairJob(db, statsSvc, log)
	if err := repair.Start("0 3 * * *"); err != nil {
		log.Fatal("failed to schedule stats repair job", zap.Error(err))
	}
	defer repair.Stop()

	r := routes.SetupRouter(routes.Deps{
		Stats: statsSvc,
		Meals: mealSvc,
		Foods: foodSvc,
		Port:  portSvc,
		Hub:   hub,
		Push:  push,
	})
	if err := r.Run(":8080"); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
