package utils

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"
)

var sesClient *ses.Client

func InitMailer() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		L().Warn("unable to load AWS config for SES, email disabled", zap.Error(err))
		return
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	if sesClient == nil {
		return fmt.Errorf("ses client not initialized")
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		L().Warn("SES send error", zap.Error(err))
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

func SendWelcomeEmail(to string, fullName string) error {
	subject := "Welcome to NaijaFit"
	body := fmt.Sprintf("Hi %s,\n\nYour NaijaFit account is ready. Log your first meal to start your streak!", fullName)
	return sendEmail(to, subject, body)
}

func SendAchievementEmail(to string, names []string) error {
	subject := "Achievement unlocked!"
	body := fmt.Sprintf("Congratulations! You just unlocked: %s.\n\nKeep logging to earn more.", strings.Join(names, ", "))
	return sendEmail(to, subject, body)
}
