package auth

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/adamspd/LogicQuiz/models"
	"github.com/adamspd/LogicQuiz/utils"
)

// EmailService builds and delivers account e-mails. Without SMTP credentials
// messages are written to the log instead.
type EmailService struct {
	config *models.EmailConfig
}

func NewEmailService(config *models.EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// Configured reports whether real SMTP delivery is possible.
func (es *EmailService) Configured() bool {
	return es.config.Username != "" && es.config.Password != ""
}

func (es *EmailService) BuildWelcomeEmail(user *models.User) (string, string) {
	subject := "Welcome to Logic Quiz"
	body := fmt.Sprintf(`Hello %s,

Your account was created on %s.

Pick a subject at %s/subjects, answer a few questions and come back to
%s/progress/report to see how you are doing.

Best regards,
The Logic Quiz Team`, user.Name, user.CreatedAt.Format("2006-01-02 15:04:05"),
		strings.TrimRight(es.config.BaseURL, "/"), strings.TrimRight(es.config.BaseURL, "/"))

	return subject, body
}

func (es *EmailService) SendEmail(to, subject, body string) error {
	if !es.Configured() {
		utils.LogInfo("SMTP not configured, logging email instead")
		utils.LogInfo("To: %s | Subject: %s\n%s", to, subject, body)
		return nil
	}

	return es.sendSMTP(to, subject, body)
}

// sendSMTP uses implicit TLS on port 465 and STARTTLS elsewhere when offered.
func (es *EmailService) sendSMTP(to, subject, body string) error {
	utils.LogInfo("Sending email to %s: %s", to, subject)

	message := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		es.config.FromName, es.config.FromAddress, to, subject, body)

	addr := fmt.Sprintf("%s:%d", es.config.SMTPHost, es.config.SMTPPort)
	tlsConfig := &tls.Config{ServerName: es.config.SMTPHost}

	var conn net.Conn
	var err error
	if es.config.SMTPPort == 465 {
		conn, err = tls.Dial("tcp", addr, tlsConfig)
	} else {
		conn, err = net.Dial("tcp", addr)
	}
	if err != nil {
		return fmt.Errorf("connect to %s: %w", addr, err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, es.config.SMTPHost)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Quit()

	if es.config.SMTPPort != 465 {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsConfig); err != nil {
				return fmt.Errorf("starttls: %w", err)
			}
		}
	}

	if err := client.Auth(smtp.PlainAuth("", es.config.Username, es.config.Password, es.config.SMTPHost)); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(es.config.FromAddress); err != nil {
		return fmt.Errorf("smtp sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := writer.Write([]byte(message)); err != nil {
		writer.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}

	utils.LogInfo("Email sent successfully to %s", to)
	return nil
}
