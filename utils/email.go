package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendOTPEmail delivers a one-time code to the user's email address.
// Without SMTP configuration (local/demo runs) the code is logged instead
// so the flow stays usable.
func SendOTPEmail(to, otp string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" || to == "" {
		LogInfo("Demo OTP delivery for %s: %s", to, otp)
		return nil
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		smtpPort = 587
	}
	smtpUsername := os.Getenv("SMTP_USERNAME")
	smtpPassword := os.Getenv("SMTP_PASSWORD")

	m := gomail.NewMessage()
	m.SetHeader("From", smtpUsername)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your verification code")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Your one-time verification code is <b>%s</b>. It expires in 10 minutes.</p>", otp))

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUsername, smtpPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send OTP email: %v", err)
	}

	return nil
}
