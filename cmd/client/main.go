package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/recipe-tracker/internal/adapter"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errUsage = errors.New("usage: client [-a address] [-t timeout] health | recipes | profile <userId> | progress <userId> <recipeId>")

// client queries a running server and prints the JSON answer. The exit code
// is non-zero on any failure, so "client health" doubles as a container probe.
func main() {
	var address string
	var timeout time.Duration
	var showVersion bool

	flag.StringVar(&address, "a", "localhost:3000", "Server address")
	flag.DurationVar(&timeout, "t", 5*time.Second, "Request timeout")
	flag.BoolVar(&showVersion, "version", false, "Print build info and exit")
	flag.Parse()

	if showVersion {
		printBuildInfo()
		return
	}

	log := logger.NewLogger("recipe-client")

	client, err := adapter.NewHTTPAPIClient(adapter.Config{BaseURL: address, Timeout: timeout}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result, err := run(ctx, client, flag.Args())
	// a degraded health report is still printed
	if err == nil || errors.Is(err, adapter.ErrServiceUnavailable) {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		_ = encoder.Encode(result)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client adapter.APIClient, args []string) (any, error) {
	if len(args) == 0 {
		return nil, errUsage
	}

	switch args[0] {
	case "health":
		health, err := client.Health(ctx)
		return health, err
	case "recipes":
		return client.ListRecipes(ctx)
	case "profile":
		if len(args) != 2 {
			return nil, errUsage
		}
		userID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q: %w", args[1], err)
		}
		return client.GetProfile(ctx, userID)
	case "progress":
		if len(args) != 3 {
			return nil, errUsage
		}
		userID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q: %w", args[1], err)
		}
		return client.GetProgress(ctx, models.ProgressKey{UserID: userID, RecipeID: args[2]})
	default:
		return nil, errUsage
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
