package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"stepify-cli/internal/videoid"
)

func runVideos(args []string) error {
	fs := flag.NewFlagSet("videos", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath(), "client config path")
	skip := fs.Int("skip", 0, "number of history rows to skip")
	limit := fs.Int("limit", 10, "maximum number of rows to return")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp(strings.TrimSpace(*configPath))
	if err != nil {
		return err
	}
	ctx := context.Background()
	if _, err := a.requireAuth(ctx); err != nil {
		return err
	}

	videos, err := a.client.UserVideos(ctx, *skip, *limit)
	if err != nil {
		return fmt.Errorf("fetch videos: %w", err)
	}
	if *jsonOut {
		return printJSON(videos)
	}
	if len(videos) == 0 {
		fmt.Println("no processed videos yet (run: stepify-cli process <url>)")
		return nil
	}
	for _, video := range videos {
		title := video.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("%s  %-10s  %-15s  %s\n", video.VideoID, video.Status, video.OutputFormat, title)
		if video.CreatedAt != "" {
			fmt.Printf("             created %s\n", video.CreatedAt)
		}
	}
	return nil
}

func runDelete(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath(), "client config path")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: stepify-cli delete <youtube-url-or-video-id> [flags]")
	}
	id := videoid.Extract(fs.Arg(0))

	a, err := newApp(strings.TrimSpace(*configPath))
	if err != nil {
		return err
	}
	ctx := context.Background()
	if _, err := a.requireAuth(ctx); err != nil {
		return err
	}

	message, err := a.client.DeleteVideo(ctx, id)
	if err != nil {
		return fmt.Errorf("delete video %s: %w", id, err)
	}
	if *jsonOut {
		return printJSON(map[string]string{"video_id": id, "message": message})
	}
	if message == "" {
		message = "deleted"
	}
	fmt.Printf("%s: %s\n", id, message)
	return nil
}
