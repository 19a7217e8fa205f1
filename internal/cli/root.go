package cli

import "fmt"

func Run(args []string) error {
	if len(args) == 0 {
		printRootUsage()
		return nil
	}

	switch args[0] {
	case "login":
		return runLogin(args[1:])
	case "logout":
		return runLogout(args[1:])
	case "whoami":
		return runWhoami(args[1:])
	case "process":
		return runProcess(args[1:])
	case "watch":
		return runWatch(args[1:])
	case "result":
		return runResult(args[1:])
	case "videos":
		return runVideos(args[1:])
	case "delete":
		return runDelete(args[1:])
	case "plans":
		return runPlans(args[1:])
	case "subscription":
		return runSubscription(args[1:])
	case "settings":
		return runSettings(args[1:])
	case "status":
		return runStatus(args[1:])
	case "help", "-h", "--help":
		printRootUsage()
		return nil
	default:
		printRootUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printRootUsage() {
	fmt.Println("stepify-cli: turn YouTube videos into structured text")
	fmt.Println()
	fmt.Println("Quick Start:")
	fmt.Println("  stepify-cli login")
	fmt.Println("  stepify-cli process https://youtube.com/watch?v=<id> --format step_by_step")
	fmt.Println("  stepify-cli result <video-id>")
	fmt.Println()
	fmt.Println("Session Commands:")
	fmt.Println("  login         authenticate with a bearer token")
	fmt.Println("  logout        clear the stored session")
	fmt.Println("  whoami        show the current profile and token expiry")
	fmt.Println()
	fmt.Println("Processing Commands:")
	fmt.Println("  process       submit a video and follow it to completion")
	fmt.Println("  watch         re-attach to a running job by job id")
	fmt.Println("  result        fetch and render a finished video result")
	fmt.Println("  videos        list the account's processing history")
	fmt.Println("  delete        remove a processed video and its jobs")
	fmt.Println()
	fmt.Println("Account Commands:")
	fmt.Println("  plans         list available subscription plans")
	fmt.Println("  subscription  show the current subscription status")
	fmt.Println()
	fmt.Println("Client Commands:")
	fmt.Println("  settings      show/update client settings (API URL, intervals)")
	fmt.Println("  status        backend reachability and session preflight")
	fmt.Println()
	fmt.Println("Notes:")
	fmt.Println("  - Use --json on commands for machine-readable output")
	fmt.Println("  - STEPIFY_API_URL overrides the configured backend URL")
}
