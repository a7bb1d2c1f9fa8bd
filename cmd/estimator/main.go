// Command estimator submits a project specification to a running pricing API
// and prints the itemized estimate. Numeric flags are passed through as typed,
// so the validator sees exactly what a form would have sent.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/ghanabuild/estimator-backend/config"
	"github.com/ghanabuild/estimator-backend/internal/estimation/client"
	"github.com/ghanabuild/estimator-backend/internal/estimation/domain"
	"github.com/ghanabuild/estimator-backend/internal/logging"
	"github.com/ghanabuild/estimator-backend/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var (
		apiURL    = flag.String("api", cfg.Estimate.BaseURL, "base URL of the pricing API")
		region    = flag.String("region", "", "project region")
		projType  = flag.String("type", "residential", "project type (residential|commercial|industrial)")
		area      = flag.String("area", "", "total floor area in sq ft")
		bathrooms = flag.String("bathrooms", "", "number of bathrooms")
		floors    = flag.String("floors", "", "number of floors")
		quality   = flag.String("quality", "", "finish quality (basic|standard|premium|luxury)")
		external  = flag.Bool("external", false, "include external works")
		retries   = flag.Int("retries", 0, "how many times to replay the request if it fails")
	)
	flag.Parse()

	logger := logging.New(cfg.App.LogLevel, cfg.App.LogFormat)
	defer logger.Sync()

	raw := domain.RawInput{
		"region":                 *region,
		"projectType":            *projType,
		"totalFloorArea":         *area,
		"numberOfBathrooms":      *bathrooms,
		"numberOfFloors":         *floors,
		"preferredFinishQuality": *quality,
		"includeExternalWorks":   *external,
	}

	sink := telemetry.NewMultiSink(telemetry.NewLogSink(logger))
	orch := client.NewOrchestrator(client.NewClient(*apiURL), sink)

	ctx := context.Background()
	if violations := orch.Submit(ctx, raw); violations != nil {
		fmt.Fprintln(os.Stderr, "Please correct the following errors:")
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "  - %s\n", v)
		}
		os.Exit(1)
	}

	state := orch.State()
	for state.Phase == client.PhaseFailed && *retries > 0 {
		*retries--
		fmt.Fprintf(os.Stderr, "%s Retrying...\n", state.Failure.Message)
		if err := orch.Retry(ctx); err != nil {
			break
		}
		state = orch.State()
	}

	switch state.Phase {
	case client.PhaseSucceeded:
		printEstimate(state.Estimate)
	case client.PhaseFailed:
		fmt.Fprintln(os.Stderr, state.Failure.Message)
		if len(state.Failure.PartialDetails) > 0 {
			fmt.Fprintln(os.Stderr, "Partial detail received:")
			for k, v := range state.Failure.PartialDetails {
				fmt.Fprintf(os.Stderr, "  %s: $%d\n", k, v)
			}
		}
		os.Exit(1)
	}
}

func printEstimate(est *domain.CostEstimate) {
	fmt.Printf("Total estimated cost: $%d %s\n\n", est.TotalCost, est.Currency)
	fmt.Println("Cost breakdown:")
	out, _ := json.MarshalIndent(est.Breakdown, "  ", "  ")
	fmt.Printf("  %s\n\n", out)
	fmt.Println(est.Details)
	fmt.Printf("Valid until %s\n", est.ValidUntil.Format("2006-01-02"))
}
