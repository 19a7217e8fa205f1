package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stepify-cli/internal/lifecycle"
	"stepify-cli/internal/model"
	"stepify-cli/internal/render"
)

var processErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)

type processReport struct {
	JobID        string                `json:"job_id"`
	VideoID      string                `json:"video_id"`
	Mode         model.Mode            `json:"mode"`
	OutputFormat model.Format          `json:"output_format"`
	Status       model.JobStatus       `json:"status,omitempty"`
	Result       *model.ProcessedVideo `json:"result,omitempty"`
}

func runProcess(args []string) error {
	fs := flag.NewFlagSet("process", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath(), "client config path")
	mode := fs.String("mode", "simple", "processing mode: simple|detailed")
	format := fs.String("format", "step_by_step", "output format: bullet_points|summary|step_by_step|podcast_article")
	noWait := fs.Bool("no-wait", false, "submit only; print the job id and exit")
	plain := fs.Bool("plain", false, "disable the interactive status view")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: stepify-cli process <youtube-url-or-video-id> [flags]")
	}
	input := strings.TrimSpace(fs.Arg(0))

	normMode, err := model.NormalizeMode(*mode)
	if err != nil {
		return err
	}
	normFormat, err := model.NormalizeFormat(*format)
	if err != nil {
		return err
	}

	a, err := newApp(strings.TrimSpace(*configPath))
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if _, err := a.requireAuth(ctx); err != nil {
		return err
	}

	sub, err := lifecycle.Submit(ctx, a.client, input, normMode, normFormat)
	if err != nil {
		if errors.Is(err, lifecycle.ErrStopped) || errors.Is(err, context.Canceled) {
			return nil
		}
		// submission failure resets to idle: report inline, nothing to clean up
		return fmt.Errorf("submit video: %w", err)
	}

	if *noWait {
		if *jsonOut {
			return printJSON(processReport{
				JobID: sub.JobID, VideoID: sub.VideoID,
				Mode: sub.Mode, OutputFormat: sub.OutputFormat, Status: sub.Status,
			})
		}
		fmt.Printf("submitted job %s for video %s (re-attach with: stepify-cli watch --job %s --video %s)\n",
			sub.JobID, sub.VideoID, sub.JobID, sub.VideoID)
		return nil
	}

	if !*jsonOut {
		fmt.Printf("submitted job %s for video %s\n", sub.JobID, sub.VideoID)
	}
	result, err := a.pollToResult(ctx, sub.JobID, sub.VideoID, *jsonOut, *plain)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if *jsonOut {
		return printJSON(processReport{
			JobID: sub.JobID, VideoID: sub.VideoID,
			Mode: sub.Mode, OutputFormat: sub.OutputFormat,
			Status: model.StatusCompleted, Result: result,
		})
	}
	fmt.Println()
	fmt.Print(render.Result(result))
	return nil
}

// pollToResult drives the poll loop to a terminal state, choosing the
// interactive view on a TTY and a plain status line otherwise. A nil, nil
// return means the loop was torn down on purpose (ctrl+c) with nothing to
// render.
func (a *app) pollToResult(ctx context.Context, jobID, videoID string, jsonOut, plain bool) (*model.ProcessedVideo, error) {
	poller := lifecycle.NewPoller(a.client.JobStatus, a.client.VideoResult)
	poller.Interval = a.settings.PollInterval()

	var result *model.ProcessedVideo
	var err error
	if !jsonOut && !plain && stdoutIsTTY() {
		result, err = runWatchView(ctx, poller, jobID, videoID)
	} else {
		if !jsonOut {
			poller.OnUpdate = func(job model.Job) {
				fmt.Printf("\r\033[2Kjob %s  %s  %3.0f%%", job.JobID, job.Status, job.Progress*100)
			}
		}
		result, err = poller.Run(ctx, jobID, videoID)
		if !jsonOut {
			fmt.Println()
		}
	}

	if err != nil {
		if errors.Is(err, lifecycle.ErrStopped) || errors.Is(err, context.Canceled) {
			return nil, nil
		}
		var failed *lifecycle.JobFailedError
		if errors.As(err, &failed) {
			// failure panel replaces the progress view; no retry is attempted
			fmt.Fprintln(os.Stderr, processErrStyle.Render("processing failed: ")+failed.Message)
		}
		return nil, err
	}
	return result, nil
}
