package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"canvascal/internal/aggregator"
	"canvascal/internal/calendar"
	"canvascal/internal/canvas"
	"canvascal/internal/config"
	"canvascal/internal/credentials"
	"canvascal/internal/fetcher"
	"canvascal/internal/server"
)

var rootCmd = &cobra.Command{
	Use:   "canvascal",
	Short: "Canvas coursework calendar",
	Long: `Aggregates assignments and enrolled courses from a Canvas LMS
instance and shows them as a week-by-week calendar, or serves them as JSON
over HTTP.`,
}

// calendarCmd prints the interactive 10-week assignment calendar
var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show upcoming assignments as a weekly calendar",
	RunE:  runCalendar,
}

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve assignments and schedule as a JSON API",
	RunE:  runServe,
}

var courseFilter []string

func init() {
	calendarCmd.Flags().StringSliceVar(&courseFilter, "courses", nil,
		"only include courses whose name contains one of these terms")
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(serveCmd)
}

func runCalendar(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	creds, err := credentials.Resolve(credentials.Options{
		Interactive: true,
		File:        cfg.CredentialsFile,
	})
	if err != nil {
		return err
	}

	client := canvas.New(creds.BaseURL, creds.Token)

	fmt.Printf("\nConnecting to Canvas at %s...\n", creds.BaseURL)
	user, err := client.GetCurrentUser()
	if err != nil {
		printConnectionHelp(cfg.CredentialsFile)
		return nil
	}
	fmt.Printf("Successfully connected as: %s\n", user.Name)

	fmt.Println("\nFetching assignments...")
	assignments, err := fetcher.FetchAssignments(client, fetcher.WindowEnd(time.Now()), courseFilter)
	if err != nil {
		fmt.Printf("\nAn error occurred: %v\n", err)
		fmt.Println("\nPlease check your credentials and try again.")
		fmt.Printf("You can delete %s to start fresh.\n", cfg.CredentialsFile)
		return nil
	}

	if len(assignments) == 0 {
		fmt.Printf("No assignments found for the next %d weeks.\n", fetcher.WindowWeeks)
		return nil
	}

	fmt.Printf("\nYour assignments for the next %d weeks:\n", fetcher.WindowWeeks)
	renderer := calendar.Detect()
	for _, bucket := range calendar.GroupByWeek(assignments) {
		fmt.Println(renderer.RenderWeek(bucket))
		fmt.Println()
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	// No prompting in server mode; missing credentials become a request-level
	// error on /api/all instead of a blocked startup.
	var client fetcher.Client
	creds, err := credentials.Resolve(credentials.Options{
		Interactive: false,
		File:        cfg.CredentialsFile,
	})
	if err != nil {
		log.Printf("starting without Canvas credentials: %v", err)
	} else {
		client = canvas.New(creds.BaseURL, creds.Token)
	}

	svc := aggregator.NewService(client, aggregator.PlaceholderShape)
	server.Start(cfg, svc)
	return nil
}

func printConnectionHelp(credentialsFile string) {
	fmt.Println("\nError: Could not connect to Canvas. Please check:")
	fmt.Println("1. Your Canvas URL is correct (e.g., https://youruniversity.instructure.com)")
	fmt.Println("2. Your API token is valid and has the correct permissions")
	fmt.Println("3. You have an active internet connection")
	fmt.Println("\nTo get a new API token:")
	fmt.Println("1. Log into Canvas in your web browser")
	fmt.Println("2. Go to Account > Settings")
	fmt.Println("3. Scroll to 'Approved Integrations'")
	fmt.Println("4. Click 'New Access Token'")
	fmt.Println("5. Give it a name and copy the token")
	fmt.Printf("\nStored credentials can be reset by deleting %s.\n", credentialsFile)
}

func main() {
	// glog registers its flags on the default FlagSet; parse it empty so
	// logging works under cobra.
	flag.CommandLine.Parse([]string{})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
