package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"stepify-cli/internal/model"
	"stepify-cli/internal/render"
)

// runWatch re-attaches to an existing job. This is the manual retry path
// after a transient poll failure aborted a `process` invocation.
func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath(), "client config path")
	jobID := fs.String("job", "", "job id to attach to")
	videoID := fs.String("video", "", "video id for the result fetch (default: reported by the job)")
	plain := fs.Bool("plain", false, "disable the interactive status view")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*jobID) == "" {
		return errors.New("--job is required")
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

	result, err := a.pollToResult(ctx, strings.TrimSpace(*jobID), strings.TrimSpace(*videoID), *jsonOut, *plain)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if *jsonOut {
		return printJSON(processReport{
			JobID:        strings.TrimSpace(*jobID),
			VideoID:      result.VideoID,
			OutputFormat: result.OutputFormat,
			Status:       model.StatusCompleted,
			Result:       result,
		})
	}
	fmt.Println()
	fmt.Print(render.Result(result))
	return nil
}
