package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
)

func runPlans(args []string) error {
	fs := flag.NewFlagSet("plans", flag.ContinueOnError)
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
	plans, err := a.client.Plans(context.Background())
	if err != nil {
		return fmt.Errorf("fetch plans: %w", err)
	}
	if *jsonOut {
		return printJSON(plans)
	}
	for _, plan := range plans {
		fmt.Printf("%s (%s)\n", plan.Name, plan.ID)
		fmt.Printf("  price: %.2f/mo", plan.Price)
		if plan.YearlyPrice > 0 {
			fmt.Printf(" (%.2f/yr)", plan.YearlyPrice)
		}
		fmt.Println()
		fmt.Printf("  monthly quota: %d videos\n", plan.MonthlyQuota)
		if plan.MaxVideoLength > 0 {
			fmt.Printf("  max video length: %d min\n", plan.MaxVideoLength)
		}
		for _, feature := range plan.Features {
			fmt.Printf("  - %s\n", feature)
		}
	}
	return nil
}

func runSubscription(args []string) error {
	fs := flag.NewFlagSet("subscription", flag.ContinueOnError)
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
	if _, err := a.requireAuth(ctx); err != nil {
		return err
	}
	status, err := a.client.SubscriptionStatus(ctx)
	if err != nil {
		return fmt.Errorf("fetch subscription: %w", err)
	}
	if status == nil {
		return nil
	}
	if *jsonOut {
		return printJSON(status)
	}
	fmt.Printf("plan: %s (%s)\n", status.PlanID, status.Status)
	fmt.Printf("quota: %d/%d used this period\n", status.UsedQuota, status.MonthlyQuota)
	if status.CurrentPeriodEnd != "" && status.CurrentPeriodEnd != "-" {
		fmt.Printf("renews: %s\n", status.CurrentPeriodEnd)
	}
	for _, feature := range status.Features {
		fmt.Printf("  - %s\n", feature)
	}
	return nil
}
