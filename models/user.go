package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	FullName string `json:"full_name"`

	Age    int     `json:"age"`
	Gender string  `gorm:"size:16" json:"gender"` // "male" | "female" | "other"
	Height float64 `json:"height"`                // cm
	Weight float64 `json:"weight"`                // kg

	Location         string `json:"location,omitempty"`
	Occupation       string `json:"occupation,omitempty"`
	HealthConditions string `json:"health_conditions,omitempty"` // comma-sep
	FitnessGoals     string `json:"fitness_goals,omitempty"`     // comma-sep
	ProfilePicture   string `json:"profile_picture,omitempty"`

	Disabled bool `json:"-"`
}
