package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func runLogout(args []string) error {
	fs := flag.NewFlagSet("logout", flag.ContinueOnError)
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
	if err := a.store.Logout(); err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(map[string]any{"authenticated": false})
	}
	fmt.Println("logged out (run `stepify-cli login` to sign in again)")
	return nil
}

type whoamiReport struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	IsActive     bool   `json:"is_active"`
	TokenExpires string `json:"token_expires,omitempty"`
}

func runWhoami(args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
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
	snap, err := a.requireAuth(context.Background())
	if err != nil {
		return err
	}

	report := whoamiReport{
		ID:       snap.User.ID,
		Email:    snap.User.Email,
		Name:     snap.User.Name,
		IsActive: snap.User.IsActive,
	}
	if token, tokenErr := a.tokens.Token(); tokenErr == nil && token != "" {
		if exp := tokenExpiry(token); !exp.IsZero() {
			report.TokenExpires = exp.UTC().Format(time.RFC3339)
		}
	}

	if *jsonOut {
		return printJSON(report)
	}
	fmt.Printf("id: %s\n", report.ID)
	fmt.Printf("email: %s\n", report.Email)
	if report.Name != "" {
		fmt.Printf("name: %s\n", report.Name)
	}
	fmt.Printf("active: %t\n", report.IsActive)
	if report.TokenExpires != "" {
		fmt.Printf("token expires: %s\n", report.TokenExpires)
	}
	return nil
}

// tokenExpiry decodes the expiry claim for display only. The backend is the
// authority on validity; no signature check happens client-side.
func tokenExpiry(token string) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
