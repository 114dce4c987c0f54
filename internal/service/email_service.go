package service

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"amavidya/internal/roster"
)

// EmailService handles sending emails via Amazon SES
type EmailService struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
	debug      bool
}

// NewEmailService creates a new email service. With no from address
// configured the service starts disabled and send calls are no-ops.
func NewEmailService(awsRegion, fromEmail, fromName, appBaseURL string, debug bool) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false, debug: debug}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &EmailService{
		client:     sesv2.NewFromConfig(cfg),
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
		debug:      debug,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendWelcomeEmail greets a newly registered teacher
func (s *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, toName string) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): welcome to %s", toEmail)
		return nil
	}

	subject := "Welcome to Amavidya!"
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #6c5ce7; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.button { display: inline-block; padding: 12px 30px; background-color: #6c5ce7; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>Welcome to Amavidya!</h1>
		</div>
		<div class="content">
			<p>Hi %s,</p>
			<p>Your teacher account is ready. Your students can now learn science, mathematics, technology, and engineering through videos and quiz games while you follow their progress.</p>
			<p>Here's what you can do next:</p>
			<ul>
				<li>See your class roster and its overall progress</li>
				<li>Search for individual students</li>
				<li>Review each student's XP, level, and subject progress</li>
			</ul>
			<p style="text-align: center;">
				<a href="%s/login" class="button">Open Your Dashboard</a>
			</p>
		</div>
		<div class="footer">
			<p>This is an automated email from Amavidya. Please do not reply.</p>
		</div>
	</div>
</body>
</html>
`, toName, s.appBaseURL)

	textBody := fmt.Sprintf(`Hi %s,

Your teacher account is ready. Your students can now learn science, mathematics, technology, and engineering through videos and quiz games while you follow their progress.

Here's what you can do next:
- See your class roster and its overall progress
- Search for individual students
- Review each student's XP, level, and subject progress

Open your dashboard: %s/login

---
This is an automated email from Amavidya. Please do not reply.
`, toName, s.appBaseURL)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// SendProgressReportEmail sends a teacher a summary of their class
func (s *EmailService) SendProgressReportEmail(ctx context.Context, toEmail, toName string, summary roster.Summary) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): progress report to %s", toEmail)
		return nil
	}

	subject := "Your Amavidya Class Progress Report"
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #6c5ce7; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.stat { font-size: 24px; font-weight: bold; color: #6c5ce7; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>Class Progress Report</h1>
		</div>
		<div class="content">
			<p>Hi %s,</p>
			<p>Here is how your class is doing:</p>
			<ul>
				<li>Students: <span class="stat">%d</span></li>
				<li>Videos watched: <span class="stat">%d</span></li>
				<li>Games played: <span class="stat">%d</span></li>
				<li>Average progress: <span class="stat">%d%%</span></li>
			</ul>
			<p>Visit your dashboard for per-student details: %s</p>
		</div>
		<div class="footer">
			<p>This is an automated email from Amavidya. Please do not reply.</p>
		</div>
	</div>
</body>
</html>
`, toName, summary.TotalStudents, summary.TotalVideosWatched, summary.TotalGamesPlayed, summary.AverageProgress, s.appBaseURL)

	textBody := fmt.Sprintf(`Hi %s,

Here is how your class is doing:

- Students: %d
- Videos watched: %d
- Games played: %d
- Average progress: %d%%

Visit your dashboard for per-student details: %s

---
This is an automated email from Amavidya. Please do not reply.
`, toName, summary.TotalStudents, summary.TotalVideosWatched, summary.TotalGamesPlayed, summary.AverageProgress, s.appBaseURL)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// sendEmail sends an email using Amazon SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	if s.debug && result.MessageId != nil {
		log.Printf("[DEBUG] SES message ID: %s", *result.MessageId)
	}
	log.Printf("Email sent successfully: to=%s, subject=%s", toEmail, subject)
	return nil
}
