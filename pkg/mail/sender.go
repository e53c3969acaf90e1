package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/venooo/dailybouquet/pkg/errors"
	"github.com/venooo/dailybouquet/pkg/observability"
)

// Sender delivers composed messages.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// DialTimeout bounds connecting to the SMTP server.
const DialTimeout = 30 * time.Second

// SMTPSender delivers over SMTP with STARTTLS and PLAIN auth.
type SMTPSender struct {
	Host     string
	Port     int
	User     string
	Password string
	Logger   *log.Logger
}

// NewSMTPSender creates a sender from cfg.
func NewSMTPSender(cfg Config, logger *log.Logger) *SMTPSender {
	if logger == nil {
		logger = log.Default()
	}
	return &SMTPSender{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		Logger:   logger,
	}
}

// Send delivers msg, retrying transient failures with backoff.
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	hooks := observability.Mail()
	start := time.Now()
	attempt := 0
	err := RetryWithBackoff(ctx, func() error {
		attempt++
		hooks.OnSendAttempt(ctx, s.Host, attempt)
		err := classify(s.send(ctx, msg))
		if IsRetryable(err) {
			s.Logger.Warn("smtp delivery failed, retrying", "attempt", attempt, "error", err)
		}
		return err
	})
	hooks.OnSendComplete(ctx, s.Host, len(msg.Data), time.Since(start), err)
	if err != nil {
		return errors.Wrap(errors.ErrCodeSendFailed, err, "send to %v via %s", msg.To, s.Host)
	}
	s.Logger.Info("email sent", "to", msg.To, "subject", msg.Subject, "bytes", len(msg.Data))
	return nil
}

func (s *SMTPSender) send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	addr := net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
	d := net.Dialer{Timeout: DialTimeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	// Abort the conversation if ctx is cancelled mid-session.
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })
	defer stop()

	c, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.Host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if s.User != "" && s.Password != "" {
		if err := c.Auth(smtp.PlainAuth("", s.User, s.Password, s.Host)); err != nil {
			return fmt.Errorf("auth: %w", err)
		}
	}
	if err := c.Mail(msg.From); err != nil {
		return err
	}
	for _, to := range msg.To {
		if err := c.Rcpt(to); err != nil {
			return err
		}
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg.Data); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

// WriterSender writes messages to W instead of delivering them, producing
// an .eml file for dry runs.
type WriterSender struct {
	W io.Writer
}

// Send implements Sender.
func (s WriterSender) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.W.Write(msg.Data); err != nil {
		return errors.Wrap(errors.ErrCodeSendFailed, err, "write message")
	}
	return nil
}
