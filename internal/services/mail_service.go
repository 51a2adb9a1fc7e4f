// services/mail_service.go
package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"net/url"
	"strings"
	texttemplate "text/template"
	"time"

	"go.uber.org/zap"
)

type MailServiceInterface interface {
	SendMailToResetPassword(to, token string) error
}

// SMTPConfig holds the SMTP connection and the links put in mails.
type SMTPConfig struct {
	Host     string
	Port     int // 587 for STARTTLS, 465 with UseSSL
	Username string
	Password string
	From     string
	FromName string
	UseSSL   bool

	AppName    string
	AppBaseURL string // reset links point at <AppBaseURL>/reset-password
}

type MailData struct {
	Title     string
	Intro     string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

// ResetPasswordLink is the page the reset mail sends the organizer to.
func ResetPasswordLink(baseURL, token string) string {
	return fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(baseURL, "/"), url.QueryEscape(token))
}

func resetPasswordMail(cfg SMTPConfig, token string, now time.Time) MailData {
	return MailData{
		Title:     "Wachtwoord opnieuw instellen",
		Intro:     "We hebben een verzoek ontvangen om je wachtwoord opnieuw in te stellen. Gebruik de knop hieronder. Heb je dit niet aangevraagd, dan kun je deze e-mail negeren.",
		ButtonURL: ResetPasswordLink(cfg.AppBaseURL, token),
		ButtonTxt: "Nieuw wachtwoord instellen",
		AppName:   cfg.AppName,
		Year:      now.Year(),
	}
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *texttemplate.Template
	logger  *zap.Logger
}

func NewSMTPMailService(cfg SMTPConfig, logger *zap.Logger) MailServiceInterface {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("mailHTML").Parse(mailHTMLTemplate)),
		textTpl: texttemplate.Must(texttemplate.New("mailText").Parse(mailTextTemplate)),
		logger:  logger.Named("mail"),
	}
}

func (s *smtpMailService) SendMailToResetPassword(to, token string) error {
	data := resetPasswordMail(s.cfg, token, time.Now())
	html, text, err := s.render(data)
	if err != nil {
		return err
	}
	if err := s.send(to, data.Title, html, text); err != nil {
		s.logger.Error("failed to send reset mail", zap.Error(err))
		return err
	}
	s.logger.Info("reset mail sent")
	return nil
}

func (s *smtpMailService) render(data MailData) (string, string, error) {
	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

func (s *smtpMailService) message(to, subject, htmlBody, textBody string) []byte {
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", s.fromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)
	return msg.Bytes()
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	var conn net.Conn
	var err error
	if s.cfg.UseSSL {
		conn, err = tls.Dial("tcp", addr, tlsCfg)
	} else {
		conn, err = (&net.Dialer{Timeout: 10 * time.Second}).Dial("tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		ok, _ := c.Extension("STARTTLS")
		if !ok {
			return fmt.Errorf("smtp server %s does not support STARTTLS", s.cfg.Host)
		}
		if err := c.StartTLS(tlsCfg); err != nil {
			return err
		}
	}

	if s.cfg.Username != "" {
		if err := c.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
			return err
		}
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(s.message(to, subject, htmlBody, textBody)); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) fromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", name), s.cfg.From)
}

// logMailService stands in when no SMTP server is configured. The reset
// link is written to the log so a local setup can still finish a reset.
type logMailService struct {
	cfg    SMTPConfig
	logger *zap.Logger
}

func NewLogMailService(cfg SMTPConfig, logger *zap.Logger) MailServiceInterface {
	return &logMailService{cfg: cfg, logger: logger.Named("mail")}
}

func (s *logMailService) SendMailToResetPassword(to, token string) error {
	s.logger.Info("password reset requested, no SMTP configured",
		zap.String("to", to),
		zap.String("link", ResetPasswordLink(s.cfg.AppBaseURL, token)))
	return nil
}

const mailHTMLTemplate = `<!doctype html>
<html lang="nl">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
</head>
<body style="margin:0;padding:32px 16px;background:#f4f1ea;font-family:Helvetica,Arial,sans-serif;color:#1f2a1f">
  <div style="max-width:560px;margin:0 auto;background:#ffffff;border-radius:12px;overflow:hidden">
    <div style="padding:24px 32px;background:#2f5d3a;color:#ffffff;font-weight:700;font-size:20px">{{.AppName}}</div>
    <div style="padding:32px">
      <h1 style="margin:0 0 16px;font-size:24px">{{.Title}}</h1>
      <p style="margin:0 0 24px;line-height:1.6">{{.Intro}}</p>
      {{if .ButtonURL}}
      <a href="{{.ButtonURL}}" style="display:inline-block;padding:14px 28px;background:#2f5d3a;color:#ffffff;text-decoration:none;border-radius:8px;font-weight:600">{{.ButtonTxt}}</a>
      <p style="margin:24px 0 0;font-size:13px;color:#5b665b">Werkt de knop niet? Kopieer dan deze link in je browser:<br><a href="{{.ButtonURL}}" style="color:#2f5d3a;word-break:break-all">{{.ButtonURL}}</a></p>
      {{end}}
    </div>
    <div style="padding:16px 32px;font-size:12px;color:#5b665b;text-align:center">&copy; {{.Year}} {{.AppName}}</div>
  </div>
</body>
</html>`

const mailTextTemplate = `{{.Title}}

{{.Intro}}
{{if .ButtonURL}}
{{.ButtonTxt}}: {{.ButtonURL}}
{{end}}
{{.AppName}} (c) {{.Year}}
`
