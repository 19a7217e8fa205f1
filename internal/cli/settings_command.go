package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"stepify-cli/internal/config"
)

func runSettings(args []string) error {
	if len(args) == 0 {
		printSettingsUsage()
		return nil
	}
	switch args[0] {
	case "show":
		return runSettingsShow(args[1:])
	case "set":
		return runSettingsSet(args[1:])
	case "help", "-h", "--help":
		printSettingsUsage()
		return nil
	default:
		printSettingsUsage()
		return fmt.Errorf("unknown settings subcommand %q", args[0])
	}
}

func printSettingsUsage() {
	fmt.Println("settings: show/update client runtime settings")
	fmt.Println()
	fmt.Println("  settings show [--json]")
	fmt.Println("  settings set [--api-url <url>] [--poll-interval <s>] [--timeout <s>] [--token-path <path>]")
}

func runSettingsShow(args []string) error {
	fs := flag.NewFlagSet("settings show", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath(), "client config path")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := config.Load(strings.TrimSpace(*configPath))
	if err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(map[string]any{
			"config_path": strings.TrimSpace(*configPath),
			"settings":    settings,
		})
	}
	fmt.Printf("config: %s\n", strings.TrimSpace(*configPath))
	fmt.Printf("api_base_url: %s\n", settings.APIBaseURL)
	fmt.Printf("poll_interval_s: %d\n", settings.PollIntervalSeconds)
	fmt.Printf("request_timeout_s: %d\n", settings.RequestTimeoutSeconds)
	if settings.TokenPath != "" {
		fmt.Printf("token_path: %s\n", settings.TokenPath)
	}
	return nil
}

func runSettingsSet(args []string) error {
	fs := flag.NewFlagSet("settings set", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath(), "client config path")
	apiURL := fs.String("api-url", "", "backend base URL (empty keeps current)")
	pollInterval := fs.Int("poll-interval", -1, "poll interval in seconds (>=1, -1 keeps current)")
	timeout := fs.Int("timeout", -1, "request timeout in seconds (>=1, -1 keeps current)")
	tokenPath := fs.String("token-path", "", "credential file path (empty keeps current)")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := strings.TrimSpace(*configPath)
	settings, err := config.Load(path)
	if err != nil {
		return err
	}

	if strings.TrimSpace(*apiURL) != "" {
		settings.APIBaseURL = strings.TrimSpace(*apiURL)
	}
	if *pollInterval != -1 {
		if *pollInterval <= 0 {
			return errors.New("--poll-interval must be >= 1")
		}
		settings.PollIntervalSeconds = *pollInterval
	}
	if *timeout != -1 {
		if *timeout <= 0 {
			return errors.New("--timeout must be >= 1")
		}
		settings.RequestTimeoutSeconds = *timeout
	}
	if strings.TrimSpace(*tokenPath) != "" {
		settings.TokenPath = strings.TrimSpace(*tokenPath)
	}

	res, err := config.Update(path, settings)
	if err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(res)
	}
	fmt.Printf("updated settings in %s\n", res.ConfigPath)
	fmt.Printf("api_base_url: %s\n", res.Settings.APIBaseURL)
	fmt.Printf("poll_interval_s: %d\n", res.Settings.PollIntervalSeconds)
	fmt.Printf("request_timeout_s: %d\n", res.Settings.RequestTimeoutSeconds)
	return nil
}
