package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/venooo/dailybouquet/pkg/mail"
	"github.com/venooo/dailybouquet/pkg/pipeline"
	"github.com/venooo/dailybouquet/pkg/schedule"
)

// emailOpts holds the command-line flags for the email command.
type emailOpts struct {
	config  string // TOML config path; empty means the default location
	envFile string // dotenv file
	force   bool   // send regardless of the hour
	dryRun  bool   // write the message to a file instead of sending
	output  string // .eml path for --dry-run
	watch   bool   // keep running and send every day at the send hour
	noCache bool   // bypass the artifact cache
}

// emailCommand creates the email command.
func (c *CLI) emailCommand() *cobra.Command {
	opts := emailOpts{envFile: ".env"}

	cmd := &cobra.Command{
		Use:   "email",
		Short: "Send today's bouquet by email",
		Long: `Email renders today's bouquet and note and sends them as an HTML email.

Settings come from, in increasing precedence: built-in defaults, the TOML
config file, the .env file, and the environment (SMTP_HOST, SMTP_PORT,
SMTP_USER, SMTP_APP_PASSWORD, TO_EMAIL, FROM_NAME, SITE_URL,
BOUQUET_TIMEZONE, BOUQUET_SEND_HOUR, BOUQUET_PNG_WIDTH).

Nothing is sent outside the configured send hour unless --force is given.`,
		Example: `  bouquet email --force
  bouquet email --dry-run -o today.eml
  bouquet email --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEmail(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default $XDG_CONFIG_HOME/bouquet/config.toml)")
	cmd.Flags().StringVar(&opts.envFile, "env-file", opts.envFile, "dotenv file to load")
	cmd.Flags().BoolVar(&opts.force, "force", false, "send even outside the send hour")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "write the message to a file instead of sending")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "file for --dry-run (default bouquet-<date>.eml)")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "keep running and send daily at the send hour")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runEmail(ctx context.Context, opts emailOpts) error {
	cfg, err := mail.LoadFiles(opts.config, opts.envFile)
	if err != nil {
		return err
	}
	validate := cfg.Validate
	if opts.dryRun {
		validate = cfg.ValidateDraft
	}
	if err := validate(); err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	var draft bytes.Buffer
	var sender mail.Sender = mail.NewSMTPSender(cfg, c.Logger)
	if opts.dryRun {
		sender = mail.WriterSender{W: &draft}
	}
	job := &mail.Job{
		Config: cfg,
		Runner: runner,
		Sender: sender,
		Logger: c.Logger,
		Now:    c.now,
	}

	if opts.watch {
		loc, err := cfg.Location()
		if err != nil {
			return err
		}
		c.out.info("Sending daily at %02d:00 %s", cfg.SendHour, cfg.TimeZone)
		return schedule.Daily(ctx, cfg.SendHour, loc, func(ctx context.Context, at time.Time) error {
			draft.Reset()
			if err := job.RunAt(ctx, at); err != nil {
				return err
			}
			if opts.dryRun {
				return c.writeDraft(opts.output, pipeline.FileName(at.In(loc).Format(time.DateOnly), "eml"), draft.Bytes())
			}
			return nil
		}, c.Logger)
	}

	spin := newSpinner(ctx, c.status, c.out, "Preparing today's bouquet...")
	spin.Start()
	report, err := job.Run(ctx, opts.force)
	if err != nil {
		spin.StopWithError("Email failed")
		return err
	}
	spin.Stop()

	if report.Skipped {
		c.out.warning("Not the send hour (%02d:00 %s), nothing sent", cfg.SendHour, cfg.TimeZone)
		c.out.nextStep("Send anyway", "bouquet email --force")
		return nil
	}
	if opts.dryRun {
		return c.writeDraft(opts.output, pipeline.FileName(report.Seed, "eml"), draft.Bytes())
	}
	c.out.success("Sent %s", StyleValue.Render(report.Subject))
	c.out.keyValue("To", cfg.To)
	c.out.keyValue("Seed", report.Seed)
	c.out.keyValue("Link", StyleLink.Render(mail.ViewURL(cfg.SiteURL, report.Seed)))
	return nil
}

func (c *CLI) writeDraft(output, fallback string, data []byte) error {
	path := output
	if path == "" {
		path = fallback
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	c.out.success("Wrote draft")
	c.out.file(path)
	return nil
}
