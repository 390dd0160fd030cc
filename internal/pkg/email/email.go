package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"time"

	"github.com/clinika/kiosk-backend-go/internal/config"
	"github.com/clinika/kiosk-backend-go/internal/domain/report"
)

const maxRetries = 3

type emailDispatcherImpl struct {
	cfg       config.SMTPConfig
	recipient string
}

// NewReportDispatcher creates the SMTP-backed attendance report dispatcher.
func NewReportDispatcher(cfg config.SMTPConfig, recipient string) report.Dispatcher {
	return &emailDispatcherImpl{
		cfg:       cfg,
		recipient: recipient,
	}
}

// Send implements report.Dispatcher. The CSV payload goes out as an
// attachment named after the covered date range.
func (s *emailDispatcherImpl) Send(ctx context.Context, from, to time.Time, csvPayload []byte) error {
	var subject, filename string
	if from.Equal(to) {
		subject = fmt.Sprintf("Attendance Report - %s", from.Format("2006-01-02"))
		filename = fmt.Sprintf("attendance_%s.csv", from.Format("2006-01-02"))
	} else {
		subject = fmt.Sprintf("Attendance Report - %s to %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
		filename = fmt.Sprintf("attendance_%s_%s.csv", from.Format("2006-01-02"), to.Format("2006-01-02"))
	}

	body := fmt.Sprintf("Attached is the attendance report covering %s through %s.\r\n",
		from.Format("January 2, 2006"), to.Format("January 2, 2006"))

	return s.sendWithAttachment(ctx, subject, body, filename, csvPayload)
}

func (s *emailDispatcherImpl) sendWithAttachment(ctx context.Context, subject, body, filename string, attachment []byte) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping report dispatch", "subject", subject)
		return nil
	}

	message, err := s.buildMessage(subject, body, filename, attachment)
	if err != nil {
		return fmt.Errorf("failed to build report email: %w", err)
	}

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := smtp.SendMail(addr, auth, s.cfg.From, []string{s.recipient}, message)
		if err == nil {
			slog.Info("Report email sent", "to", s.recipient, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send report email",
			"to", s.recipient,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send report email after %d attempts: %w", maxRetries, lastErr)
}

func (s *emailDispatcherImpl) buildMessage(subject, body, filename string, attachment []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	headers += fmt.Sprintf("To: %s\r\n", s.recipient)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n", writer.Boundary())
	headers += "\r\n"

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", "text/plain; charset=\"UTF-8\"")
	textPart, err := writer.CreatePart(textHeader)
	if err != nil {
		return nil, err
	}
	if _, err := textPart.Write([]byte(body)); err != nil {
		return nil, err
	}

	attachmentHeader := textproto.MIMEHeader{}
	attachmentHeader.Set("Content-Type", "text/csv; charset=\"UTF-8\"")
	attachmentHeader.Set("Content-Transfer-Encoding", "base64")
	attachmentHeader.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	attachmentPart, err := writer.CreatePart(attachmentHeader)
	if err != nil {
		return nil, err
	}
	encoded := base64.StdEncoding.EncodeToString(attachment)
	if _, err := attachmentPart.Write([]byte(encoded)); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return append([]byte(headers), buf.Bytes()...), nil
}
