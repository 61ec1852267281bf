package mail

import (
	"fmt"
	"time"

	"github.com/sustentus/vendor-portal/app/models"
	"github.com/sustentus/vendor-portal/internal/pkg/env"
	"github.com/sustentus/vendor-portal/internal/pkg/plans"
)

// Message is a rendered transactional email.
type Message struct {
	Subject string
	HTML    string
}

// MagicLinkEmail renders the signup confirmation email carrying the
// time-limited token link.
func MagicLinkEmail(plan, token string) Message {
	frontendURL := env.GetEnv("FRONTEND_URL", "http://localhost:3000")

	return Message{
		Subject: fmt.Sprintf("Welcome to Sustentus - Complete Your %s Plan Setup", plan),
		HTML: fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <div style="background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); padding: 30px; text-align: center; color: white;">
        <h1 style="margin: 0; font-size: 28px;">Welcome to Sustentus!</h1>
        <p style="margin: 10px 0 0 0; font-size: 16px;">Complete your %s plan setup</p>
      </div>

      <div style="padding: 30px; background: #f8f9fa;">
        <h2 style="color: #333; margin-bottom: 20px;">Almost there!</h2>
        <p style="color: #666; line-height: 1.6; margin-bottom: 20px;">
          Thank you for choosing Sustentus! To complete your account setup and access your %s plan, please click the button below:
        </p>

        <div style="text-align: center; margin: 30px 0;">
          <a href="%s?token=%s&plan=%s"
             style="background: #667eea; color: white; padding: 15px 30px; text-decoration: none; border-radius: 8px; font-weight: bold; display: inline-block;">
            Complete Setup
          </a>
        </div>

        <p style="color: #666; font-size: 14px; margin-top: 20px;">
          This link will expire in 24 hours. If you didn't request this email, please ignore it.
        </p>
      </div>
    </div>
  `, plan, plan, frontendURL, token, plan),
	}
}

// WelcomeEmail renders the account-active email sent once signup completes.
func WelcomeEmail(email, plan string, profile models.VendorProfile) Message {
	return Message{
		Subject: fmt.Sprintf("Welcome to Sustentus - Your %s Plan is Active!", plan),
		HTML: fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <div style="background: linear-gradient(135deg, #28a745 0%%, #20c997 100%%); padding: 30px; text-align: center; color: white;">
        <h1 style="margin: 0; font-size: 28px;">Welcome to Sustentus!</h1>
        <p style="margin: 10px 0 0 0; font-size: 16px;">Your %s plan is now active</p>
      </div>

      <div style="padding: 30px; background: #f8f9fa;">
        <h2 style="color: #333; margin-bottom: 20px;">Account Details</h2>
        <div style="background: white; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
          <p><strong>Company:</strong> %s</p>
          <p><strong>Contact:</strong> %s</p>
          <p><strong>Email:</strong> %s</p>
          <p><strong>Plan:</strong> %s</p>
        </div>

        <h3 style="color: #333; margin-bottom: 15px;">Next Steps</h3>
        <ul style="color: #666; line-height: 1.6;">
          <li>Access your dashboard at <a href="https://app.sustentus.com" style="color: #667eea;">app.sustentus.com</a></li>
          <li>Set up your team and integrations</li>
          <li>Configure your business processes</li>
        </ul>
      </div>
    </div>
  `, plan, profile.CompanyName, profile.ContactName, email, plan),
	}
}

// PaymentConfirmationEmail renders the payment-processed email. Payment
// itself is simulated upstream; this only confirms the recorded charge.
func PaymentConfirmationEmail(plan string, profile models.VendorProfile) Message {
	price := plans.PricingFor(plan).MonthlyPrice

	return Message{
		Subject: fmt.Sprintf("Payment Confirmation - Sustentus %s Plan", plan),
		HTML: fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <div style="background: linear-gradient(135deg, #17a2b8 0%%, #138496 100%%); padding: 30px; text-align: center; color: white;">
        <h1 style="margin: 0; font-size: 28px;">Payment Confirmed!</h1>
        <p style="margin: 10px 0 0 0; font-size: 16px;">Your payment has been processed successfully</p>
      </div>

      <div style="padding: 30px; background: #f8f9fa;">
        <h2 style="color: #333; margin-bottom: 20px;">Payment Details</h2>
        <div style="background: white; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
          <p><strong>Amount:</strong> &euro;%.2f/month</p>
          <p><strong>Plan:</strong> %s</p>
          <p><strong>Company:</strong> %s</p>
          <p><strong>Date:</strong> %s</p>
        </div>
      </div>
    </div>
  `, price, plan, profile.CompanyName, time.Now().Format("02.01.2006")),
	}
}
