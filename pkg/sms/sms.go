package sms

import (
	"fmt"
	"log"
)

// Sender delivers SMS messages. Swap the implementation for a real gateway
// (Twilio, Vonage, etc.) in production.
type Sender interface {
	Send(phoneNumber, message string) error
}

// LogSender logs messages instead of delivering them. Used in development
// and preview environments.
type LogSender struct{}

// NewLogSender creates a logging SMS sender
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the SMS instead of delivering it
func (s *LogSender) Send(phoneNumber, message string) error {
	log.Printf("[SMS] To: %s | %s", phoneNumber, message)
	return nil
}

// VerificationMessage builds the verification code SMS body
func VerificationMessage(code string) string {
	return fmt.Sprintf("Your Money Records verification code is: %s. This code will expire in 10 minutes.", code)
}
