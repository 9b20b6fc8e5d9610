package utils

import (
	"cultura/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendEmail sends a transactional HTML email through SendGrid
func sendEmail(toEmail, toName, subject, htmlBody string) error {
	from := mail.NewEmail("Cultura Training", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Failed to send email to %s, response code: %d", toEmail, resp.StatusCode)
		return fmt.Errorf("failed to send email, code: %d", resp.StatusCode)
	}

	return nil
}

// emailTemplate wraps body content in the shared layout
func emailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1D3557; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1D3557; line-height: 1.6; }
			.content h2 { color: #1D3557; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #E63946; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #E63946; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>%s</h1>
			</div>
			<div class="content">
				%s
			</div>
			<div class="footer">
				Cultura Training · cultural-awareness courses for teams
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a newly registered user
func SendWelcomeEmail(email, userName string) error {
	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your account is ready. Browse the course catalog and start building
		cultural awareness with your team.</p>
		<div class="info-box">Course access is unlocked by a package purchase or a staff seat from your employer.</div>
	`, userName)

	return sendEmail(email, userName, "Welcome to Cultura Training", emailTemplate("Welcome to Cultura", body))
}

// SendSeatInviteEmail invites a staff member to claim an assigned seat
func SendSeatInviteEmail(email, ownerName, inviteToken string) error {
	body := fmt.Sprintf(`
		<h2>You've been given a course seat</h2>
		<p>%s has assigned you a seat on Cultura Training.</p>
		<p>Sign in (or create an account with this email address) and redeem the
		invite code below to unlock your courses.</p>
		<div class="info-box"><strong>Invite code:</strong> %s</div>
	`, ownerName, inviteToken)

	return sendEmail(email, "", "Your Cultura Training seat is waiting", emailTemplate("Seat Invitation", body))
}

// SendCertificateEmail notifies a learner their certificate was issued
func SendCertificateEmail(email, userName, courseName, certificateNumber string) error {
	body := fmt.Sprintf(`
		<h2>Congratulations, %s!</h2>
		<p>Your certificate for completing <strong>%s</strong> has been approved.</p>
		<div class="info-box"><strong>Certificate number:</strong> %s</div>
		<p>Keep this number for verification purposes.</p>
	`, userName, courseName, certificateNumber)

	return sendEmail(email, userName, "Your course completion certificate", emailTemplate("Certificate Issued", body))
}
