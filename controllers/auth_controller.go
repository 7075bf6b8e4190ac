package controllers

import (
	"net/http"
	"time"

	"naijafit/models"
	"naijafit/services"
	"naijafit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	Stats *services.StatsService
}

func NewAuthController(stats *services.StatsService) *AuthController {
	return &AuthController{Stats: stats}
}

func (ac *AuthController) Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.RegisterUser(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Seed the derived stats record; a duplicate here only means a retried
	// registration already did it.
	if _, err := ac.Stats.Initialize(user.ID); err != nil && err != services.ErrDuplicateUser {
		utils.L().Warn("stats init failed at registration", zap.Uint("user_id", user.ID), zap.Error(err))
	}
	if user.Weight > 0 {
		today := time.Now().Format(models.DateLayout)
		if _, err := ac.Stats.AddWeightSample(user.ID, today, user.Weight); err != nil {
			utils.L().Warn("initial weight sample failed", zap.Uint("user_id", user.ID), zap.Error(err))
		}
	}
	if err := utils.SendWelcomeEmail(user.Email, user.FullName); err != nil {
		utils.L().Warn("welcome email failed", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registered", "user_id": user.ID})
}

func (ac *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := services.AuthenticateUser(body.Email, body.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
