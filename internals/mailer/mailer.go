// internals/mailer/mailer.go
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"palhope_backend/internals/configs"
)

const fromName = "PalHope"

// Mailer kirim email via SMTP. Dipakai sebagai Notifier di pipeline donasi:
// selalu best-effort, gagal hanya dicatat di log.
type Mailer struct {
	host   string
	port   string
	user   string
	pass   string
	secure bool // SMTP_SECURE=true -> TLS implisit (mis. port 465)
}

func NewFromEnv() *Mailer {
	return &Mailer{
		host:   configs.SMTPHost,
		port:   configs.SMTPPort,
		user:   configs.SMTPUser,
		pass:   configs.SMTPPass,
		secure: configs.SMTPSecure == "true",
	}
}

// Send mengirim satu email plain text. Retry dengan exponential backoff
// (maks 3x) untuk gangguan SMTP sementara.
func (m *Mailer) Send(to, subject, body string) error {
	if m.host == "" {
		return fmt.Errorf("SMTP_HOST belum diset")
	}

	msg := buildMessage(m.user, to, subject, body)
	addr := m.host + ":" + m.port

	operation := func() (struct{}, error) {
		var auth smtp.Auth
		if m.user != "" {
			auth = smtp.PlainAuth("", m.user, m.pass, m.host)
		}
		if m.secure {
			return struct{}{}, m.sendTLS(addr, auth, to, msg)
		}
		// Tanpa SMTP_SECURE: koneksi plain, STARTTLS opportunistik.
		return struct{}{}, smtp.SendMail(addr, auth, m.user, []string{to}, msg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(3),
	); err != nil {
		return err
	}

	log.Printf("📧 Email terkirim ke %s (%s)", to, subject)
	return nil
}

// sendTLS kirim lewat koneksi TLS implisit, dipakai server seperti
// smtps di port 465 yang tidak menerima handshake plain.
func (m *Mailer) sendTLS(addr string, auth smtp.Auth, to string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.host})
	if err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	if err := client.Mail(m.user); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %q <%s>\r\n", fromName, from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
