package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// SendVerificationCode sends a verification code email
func (s *EmailService) SendVerificationCode(toEmail, code string) error {
	htmlContent, err := s.renderVerificationEmail(code)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := "Your Verification Code - Money Records"
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

// renderVerificationEmail renders the verification code email template
func (s *EmailService) renderVerificationEmail(code string) (string, error) {
	tmpl, err := template.New("verification_code").Parse(verificationCodeTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		Code    string
		AppName string
	}{
		Code:    code,
		AppName: "Money Records",
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// verificationCodeTemplate is the HTML template for verification code emails
const verificationCodeTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Verification Code</title>
</head>
<body style="margin: 0; padding: 0; background-color: #f4f4f7; font-family: Arial, sans-serif;">
    <table width="100%" cellpadding="0" cellspacing="0" style="background-color: #f4f4f7; padding: 24px 0;">
        <tr>
            <td align="center">
                <table width="480" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; padding: 32px;">
                    <tr>
                        <td align="center" style="padding-bottom: 16px;">
                            <h2 style="margin: 0; color: #111827;">{{.AppName}}</h2>
                        </td>
                    </tr>
                    <tr>
                        <td align="center" style="color: #374151; font-size: 14px; padding-bottom: 24px;">
                            Use the code below to verify your email address. It expires in 10 minutes.
                        </td>
                    </tr>
                    <tr>
                        <td align="center" style="padding-bottom: 24px;">
                            <span style="display: inline-block; background-color: #f3f4f6; border-radius: 6px; padding: 12px 24px; font-size: 28px; letter-spacing: 8px; font-weight: bold; color: #111827;">{{.Code}}</span>
                        </td>
                    </tr>
                    <tr>
                        <td align="center" style="color: #9ca3af; font-size: 12px;">
                            If you did not request this code, you can safely ignore this email.
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
