package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

const assignmentTemplate = `<p>Hi {{.Name}},</p>
<p>The {{.Kind}} <strong>{{.Title}}</strong> was just assigned to you.</p>
<p>Open SalesTrack to follow up.</p>`

type assignmentEmailData struct {
	Name  string
	Kind  string
	Title string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendAssignment(to, name, kind, title string) error {
	t, err := template.New("assignment").Parse(assignmentTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, assignmentEmailData{Name: name, Kind: kind, Title: title}); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("New %s assigned to you: %s", kind, title))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
