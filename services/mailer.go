package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wneessen/go-mail"

	"github.com/syedzainalii/noosh-tuft/config"
)

// Mailer sends transactional mail. Every send is best-effort from the
// caller's perspective; failures are logged and swallowed upstream.
type Mailer interface {
	SendVerificationEmail(to, token string) error
	SendPasswordResetEmail(to, token string) error
	SendOrderConfirmation(to, orderNumber string, total decimal.Decimal) error
}

type smtpMailer struct {
	cfg config.Config
}

func NewMailer(cfg config.Config) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) send(to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(m.cfg.MailFromName, m.cfg.MailFrom); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(m.cfg.MailHost,
		mail.WithPort(m.cfg.MailPort),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.cfg.MailUsername),
		mail.WithPassword(m.cfg.MailPassword),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}
	return client.DialAndSend(msg)
}

func (m *smtpMailer) SendVerificationEmail(to, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", m.cfg.FrontendURL, token)
	body := fmt.Sprintf(`
<div style="max-width:600px;margin:auto;font-family:Arial,sans-serif;color:#333">
	<h2>Welcome to %s!</h2>
	<p>Thank you for registering. Please verify your email address to complete your registration.</p>
	<p><a href="%s" style="display:inline-block;padding:12px 24px;background-color:#4F46E5;color:white;text-decoration:none;border-radius:5px">Verify Email Address</a></p>
	<p>Or copy and paste this link into your browser:</p>
	<p>%s</p>
	<p style="font-size:12px;color:#666">If you didn't create an account, please ignore this email.</p>
</div>`, m.cfg.MailFromName, link, link)
	return m.send(to, "Verify Your Email Address", body)
}

func (m *smtpMailer) SendPasswordResetEmail(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.cfg.FrontendURL, token)
	body := fmt.Sprintf(`
<div style="max-width:600px;margin:auto;font-family:Arial,sans-serif;color:#333">
	<h2>Password Reset Request</h2>
	<p>We received a request to reset your password. Click the button below to choose a new one.</p>
	<p><a href="%s" style="display:inline-block;padding:12px 24px;background-color:#4F46E5;color:white;text-decoration:none;border-radius:5px">Reset Password</a></p>
	<p>Or copy and paste this link into your browser:</p>
	<p>%s</p>
	<p style="font-size:12px;color:#666">If you didn't request a reset, you can safely ignore this email.</p>
</div>`, link, link)
	return m.send(to, "Reset Your Password", body)
}

func (m *smtpMailer) SendOrderConfirmation(to, orderNumber string, total decimal.Decimal) error {
	body := fmt.Sprintf(`
<div style="max-width:600px;margin:auto;font-family:Arial,sans-serif;color:#333">
	<h2>Thank you for your order!</h2>
	<p>Your order <strong>%s</strong> has been received and is being prepared.</p>
	<p>Order total: <strong>$%s</strong></p>
	<p>We will let you know as soon as it ships.</p>
	<p style="font-size:12px;color:#666">%s</p>
</div>`, orderNumber, total.StringFixed(2), m.cfg.MailFromName)
	return m.send(to, fmt.Sprintf("Order Confirmation - %s", orderNumber), body)
}
