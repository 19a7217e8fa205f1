package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
)

type statusReport struct {
	APIBaseURL    string `json:"api_base_url"`
	Reachable     bool   `json:"reachable"`
	BackendStatus string `json:"backend_status,omitempty"`
	BackendError  string `json:"backend_error,omitempty"`
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}

// runStatus is the preflight check: backend reachability first, then the
// session (which is only settled when the backend answered).
func runStatus(args []string) error {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath(), "client config path")
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
	report := statusReport{APIBaseURL: a.settings.APIBaseURL}

	backendStatus, err := a.client.Ping(ctx)
	if err != nil {
		report.BackendError = err.Error()
	} else {
		report.Reachable = true
		report.BackendStatus = backendStatus
	}

	if report.Reachable {
		if initErr := a.store.Initialize(ctx); initErr == nil {
			snap := a.store.Snapshot()
			report.Authenticated = snap.Authenticated
			if snap.User != nil {
				report.Email = snap.User.Email
			}
		}
	}

	if *jsonOut {
		return printJSON(report)
	}
	fmt.Printf("backend: %s\n", report.APIBaseURL)
	if report.Reachable {
		fmt.Printf("reachable: yes (%s)\n", report.BackendStatus)
	} else {
		fmt.Printf("reachable: no (%s)\n", report.BackendError)
	}
	if report.Authenticated {
		fmt.Printf("session: logged in as %s\n", report.Email)
	} else {
		fmt.Println("session: not logged in")
	}
	return nil
}
