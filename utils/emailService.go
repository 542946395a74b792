package utils

import (
	"copyadmin/config"
	"fmt"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" || password == "" {
		// Email delivery is optional; without credentials we skip quietly.
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: CopyTrade Admin <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

// SendConnectionAcceptedEmail notifies a student that a teacher accepted
// the connection request.
func SendConnectionAcceptedEmail(to, studentName, teacherName string) error {
	body := fmt.Sprintf(`
	<p>Hi %s,</p>
	<p>Your connection with <b>%s</b> is now active. Trades placed by your
	teacher will be copied to your account according to your risk settings.</p>
	<p>— CopyTrade Admin</p>`, studentName, teacherName)

	return SendEmail([]string{to}, "Connection accepted on CopyTrade", body)
}
