package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"stepify-cli/internal/render"
)

func runResult(args []string) error {
	fs := flag.NewFlagSet("result", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath(), "client config path")
	jsonOut := fs.Bool("json", false, "print the raw result payload as JSON")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: stepify-cli result <video-id> [flags]")
	}
	videoID := strings.TrimSpace(fs.Arg(0))

	a, err := newApp(strings.TrimSpace(*configPath))
	if err != nil {
		return err
	}
	ctx := context.Background()
	if _, err := a.requireAuth(ctx); err != nil {
		return err
	}

	result, err := a.client.VideoResult(ctx, videoID)
	if err != nil {
		return fmt.Errorf("fetch result: %w", err)
	}
	if result == nil {
		return nil
	}
	if *jsonOut {
		return printJSON(result)
	}
	fmt.Print(render.Result(result))
	return nil
}
