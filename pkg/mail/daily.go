package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/venooo/dailybouquet/pkg/pipeline"
	"github.com/venooo/dailybouquet/pkg/schedule"
	"github.com/venooo/dailybouquet/pkg/seed"
)

// Job sends the daily bouquet email.
type Job struct {
	Config Config
	Runner *pipeline.Runner
	Sender Sender
	Logger *log.Logger

	// Now overrides the clock. Defaults to time.Now.
	Now func() time.Time
}

// Report describes one run of the job.
type Report struct {
	Seed    string
	Subject string
	Skipped bool
	Bytes   int
}

// Run sends today's email. Unless force is set, nothing is sent outside the
// configured send hour. The seed is the local date, so a day's bouquet is
// the same on every run.
func (j *Job) Run(ctx context.Context, force bool) (*Report, error) {
	now := time.Now
	if j.Now != nil {
		now = j.Now
	}
	logger := j.Logger
	if logger == nil {
		logger = log.Default()
	}
	loc, err := j.Config.Location()
	if err != nil {
		return nil, err
	}
	local := now().In(loc)
	return j.send(ctx, local, force, logger)
}

// RunAt sends the email scheduled for at. It is the schedule.Func used by
// the watch loop.
func (j *Job) RunAt(ctx context.Context, at time.Time) error {
	logger := j.Logger
	if logger == nil {
		logger = log.Default()
	}
	loc, err := j.Config.Location()
	if err != nil {
		return err
	}
	_, err = j.send(ctx, at.In(loc), true, logger)
	return err
}

func (j *Job) send(ctx context.Context, local time.Time, force bool, logger *log.Logger) (*Report, error) {
	if !force && !schedule.Due(local, j.Config.SendHour, local.Location()) {
		logger.Info("skipping: outside send hour",
			"hour", local.Hour(),
			"send_hour", j.Config.SendHour,
			"zone", j.Config.TimeZone)
		return &Report{Skipped: true}, nil
	}

	s := seed.ForDate(local)
	logger.Info("generating daily bouquet", "seed", s, "time", local.Format(time.RFC3339))

	res, err := j.Runner.Execute(ctx, pipeline.Options{
		Seed:    s,
		Hour:    local.Hour(),
		Formats: []string{pipeline.FormatPNG},
		Width:   j.Config.Width,
	})
	if err != nil {
		return nil, fmt.Errorf("render bouquet: %w", err)
	}

	msg, err := Compose(j.Config, Content{
		Seed:    s,
		Date:    local,
		Message: res.Message,
		PNG:     res.Artifacts[pipeline.FormatPNG],
	})
	if err != nil {
		return nil, fmt.Errorf("compose email: %w", err)
	}
	if err := j.Sender.Send(ctx, msg); err != nil {
		return nil, err
	}
	return &Report{Seed: s, Subject: msg.Subject, Bytes: len(msg.Data)}, nil
}
