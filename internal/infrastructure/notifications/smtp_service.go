package notifications

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/Mehdi-ehsani/steptracker-server/domain"
)

// SMTPServiceImpl implements domain.Mailer over plain SMTP.
type SMTPServiceImpl struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
	useTLS   bool
}

// NewSMTPService creates a new SMTP mailer
func NewSMTPService(host string, port int, username, password, from, fromName string, useTLS bool) domain.Mailer {
	if port == 0 {
		port = 587
	}
	return &SMTPServiceImpl{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
		useTLS:   useTLS,
	}
}

// SendOTP implements domain.Mailer
func (s *SMTPServiceImpl) SendOTP(_ context.Context, to, code string, expiresAt time.Time) error {
	// If no host is configured, log instead of sending
	if s.host == "" {
		fmt.Printf("[MOCK MAIL] To: %s, Code: %s, Expires: %s\n", to, code, expiresAt.UTC().Format(time.RFC3339))
		return nil
	}

	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("recipient email is required")
	}

	subject := "Your verification code"
	body := fmt.Sprintf(
		"Your verification code is %s.\nIt expires at %s UTC.\nDo not share this code with anyone.\n",
		code,
		expiresAt.UTC().Format(time.RFC3339),
	)
	msg := buildMessage(s.from, s.fromName, to, subject, body)
	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	if s.useTLS {
		return s.sendTLS(addr, auth, to, msg)
	}

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send OTP mail: %w", err)
	}
	return nil
}

func (s *SMTPServiceImpl) sendTLS(addr string, auth smtp.Auth, to, msg string) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return err
	}
	defer client.Quit()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	if err := client.Mail(s.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	writer, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := writer.Write([]byte(msg)); err != nil {
		_ = writer.Close()
		return err
	}
	return writer.Close()
}

func buildMessage(from, fromName, to, subject, body string) string {
	fromHeader := from
	if strings.TrimSpace(fromName) != "" {
		fromHeader = fmt.Sprintf("%s <%s>", fromName, from)
	}

	headers := []string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
	}

	return strings.Join(headers, "\r\n") + "\r\n\r\n" + body
}
