// Package mail delivers the daily bouquet by email.
//
// [Load] assembles a [Config] from built-in defaults, an optional TOML file,
// a .env file and the environment, in that order of precedence. [Compose]
// renders the HTML card with the bouquet embedded inline, and a [Sender]
// delivers it: [SMTPSender] over SMTP, [WriterSender] to a file for dry
// runs. [Job] ties these to the pipeline and the send-hour check.
//
//	cfg, err := mail.Load("")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	job := &mail.Job{
//	    Config: cfg,
//	    Runner: pipeline.NewRunner(nil, nil, logger),
//	    Sender: mail.NewSMTPSender(cfg, logger),
//	}
//	report, err := job.Run(ctx, false)
package mail
