package services

import (
	"errors"
	"fmt"
	"time"

	"naijafit/config"
	"naijafit/models"
	"naijafit/utils"

	"go.uber.org/zap"
)

type ProfileInput struct {
	FullName         string  `json:"full_name"`
	Age              int     `json:"age"`
	Gender           string  `json:"gender"`
	Height           float64 `json:"height"`
	Weight           float64 `json:"weight"`
	Location         string  `json:"location"`
	Occupation       string  `json:"occupation"`
	HealthConditions string  `json:"health_conditions"`
	FitnessGoals     string  `json:"fitness_goals"`
	ProfilePicture   string  `json:"profile_picture"` // base64 data URL
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	return map[string]interface{}{
		"id":                user.ID,
		"email":             user.Email,
		"full_name":         user.FullName,
		"age":               user.Age,
		"gender":            user.Gender,
		"height":            user.Height,
		"weight":            user.Weight,
		"location":          user.Location,
		"occupation":        user.Occupation,
		"health_conditions": user.HealthConditions,
		"fitness_goals":     user.FitnessGoals,
		"profile_picture":   user.ProfilePicture,
	}, nil
}

// UpdateUserProfile applies partial profile edits. A weight change also
// appends a dated sample to the user's weight progress through the stats
// service — the one stats write the meal log does not drive.
func UpdateUserProfile(userID uint, input ProfileInput, stats *StatsService) error {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Location != "" {
		user.Location = input.Location
	}
	if input.Occupation != "" {
		user.Occupation = input.Occupation
	}
	if input.HealthConditions != "" {
		user.HealthConditions = input.HealthConditions
	}
	if input.FitnessGoals != "" {
		user.FitnessGoals = input.FitnessGoals
	}

	if input.Weight > 0 && input.Weight != user.Weight {
		user.Weight = input.Weight
		today := time.Now().Format(models.DateLayout)
		if _, err := stats.AddWeightSample(userID, today, input.Weight); err != nil && !errors.Is(err, ErrUserNotFound) {
			utils.L().Warn("weight sample failed", zap.Uint("user_id", userID), zap.Error(err))
		}
	}

	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func DeleteUser(userID uint) error {
	var user models.User
	result := config.DB.First(&user, userID)
	if result.Error != nil {
		return result.Error
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}
