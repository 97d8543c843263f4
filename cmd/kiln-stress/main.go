// kiln-stress drives the phased scheduler headless with a randomized
// entity population and reports tick timings and memory behavior.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var (
	flagDuration       time.Duration
	flagEntities       int
	flagTickRate       int
	flagProfile        string
	flagGCPauseMetrics bool
)

var rootCmd = &cobra.Command{
	Use:   "kiln-stress",
	Short: "Stress test the kiln ECS scheduler",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the stress simulation and print a report",
	RunE:  runStress,
}

func init() {
	runCmd.Flags().DurationVar(&flagDuration, "duration", 10*time.Second, "total simulation run time")
	runCmd.Flags().IntVar(&flagEntities, "entities", 10000, "initial entity count")
	runCmd.Flags().IntVar(&flagTickRate, "tick-rate", 0, "ticks per second, 0 for uncapped")
	runCmd.Flags().StringVar(&flagProfile, "profile", "", "write a profile: cpu or mem")
	runCmd.Flags().BoolVar(&flagGCPauseMetrics, "gc-pause-metrics", false, "include GC pause details in the report")
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runStress(cmd *cobra.Command, args []string) error {
	switch flagProfile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "":
	default:
		return fmt.Errorf("unknown profile mode %q (want cpu or mem)", flagProfile)
	}

	log.Println("Starting stress test...")

	world, scheduler := buildWorld(flagEntities)
	log.Printf("Populated %d entities across %d archetypes", flagEntities, len(world.Archetypes()))

	report := &Report{
		Duration:       flagDuration,
		Entities:       flagEntities,
		Components:     len(componentPool),
		GCPauseMetrics: flagGCPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	var limiter *time.Ticker
	if flagTickRate > 0 {
		limiter = time.NewTicker(time.Second / time.Duration(flagTickRate))
		defer limiter.Stop()
	}

	log.Printf("Running for %s...", flagDuration)
	deadline := time.Now().Add(flagDuration)
	startTime := time.Now()
	lastTick := time.Now()

	for time.Now().Before(deadline) {
		if limiter != nil {
			<-limiter.C
		}

		delta := time.Since(lastTick)
		lastTick = time.Now()

		tickStart := time.Now()
		scheduler.Tick(delta.Seconds())
		report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
	}

	report.TotalTime = time.Since(startTime)
	report.TotalTicks = int64(len(report.TickTime.Samples))
	report.TickTime.Finalize()
	report.Scheduler = scheduler.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("generating report: %w", err)
	}
	fmt.Println("--- End of Report ---")
	return nil
}
