package libs

import (
	"context"
	"fmt"
	"html"

	"bakery-shop/models"

	"gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewMailer(host string, port int, user, pass, from, to string) (*Mailer, error) {
	if host == "" || user == "" || pass == "" || to == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}
	if from == "" {
		from = user
	}
	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
		to:     to,
	}, nil
}

func FeedbackMessage(from, to string, f models.FeedbackSubmission) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Reply-To", f.Email)
	m.SetHeader("Subject", fmt.Sprintf("New message from %s", f.Name))

	body := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px;">
    <h2 style="color: #b45309;">New contact form message</h2>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p style="white-space: pre-wrap; background: #fff7ed; padding: 16px; border-radius: 8px;">%s</p>
</div>`,
		html.EscapeString(f.Name),
		html.EscapeString(f.Email),
		html.EscapeString(f.Message),
	)
	m.SetBody("text/html", body)
	m.AddAlternative("text/plain", fmt.Sprintf("From %s <%s>:\n\n%s", f.Name, f.Email, f.Message))
	return m
}

func (s *Mailer) NotifyFeedback(_ context.Context, f models.FeedbackSubmission) error {
	if err := s.dialer.DialAndSend(FeedbackMessage(s.from, s.to, f)); err != nil {
		return fmt.Errorf("send feedback mail: %w", err)
	}
	return nil
}
