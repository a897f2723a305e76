package main

import (
	"context"
	"log"
	"os"

	"flight-schedule-seeder/config"
	"flight-schedule-seeder/internal/cache"
	"flight-schedule-seeder/internal/database"
	"flight-schedule-seeder/internal/repository"
	"flight-schedule-seeder/internal/routespec"
	"flight-schedule-seeder/internal/service"
	"flight-schedule-seeder/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultRoutesFile = "routes.yaml"

func main() {
	var routesPath string
	var warmCache bool

	rootCmd := &cobra.Command{
		Use:   "seeder",
		Short: "Seed the flight schedule database with recurring flights and per-seat inventory",
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the schedule tables if they do not exist",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.LoadConfig()

			pool, err := database.InitDatabase(&cfg.Database)
			if err != nil {
				log.Fatalf("failed to initialize database: %v", err)
			}
			defer pool.Close()

			if err := database.RunMigrations(context.Background(), pool); err != nil {
				log.Fatalf("migration failed: %v", err)
			}
			logger.L.Info("schedule tables ready")
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Materialize flights and seat inventory for every route in the spec file",
		Run: func(cmd *cobra.Command, args []string) {
			specs, err := routespec.Load(routesPath)
			if err != nil {
				log.Fatalf("failed to load route specs: %v", err)
			}

			cfg := config.LoadConfig()

			pool, err := database.InitDatabase(&cfg.Database)
			if err != nil {
				log.Fatalf("failed to initialize database: %v", err)
			}
			defer pool.Close()

			var warmer cache.FlightInventoryWarmer
			if warmCache {
				rdb, err := database.InitRedis(&cfg.Redis)
				if err != nil {
					log.Fatalf("failed to initialize redis: %v", err)
				}
				defer rdb.Close()
				warmer = cache.NewFlightInventoryWarmer(rdb)
			}

			scheduleService := service.NewScheduleService(
				pool,
				repository.NewAircraftRepository(pool),
				repository.NewScheduleRepository(pool),
				warmer,
			)

			ctx := context.Background()
			failed := 0
			for _, spec := range specs {
				// routes are independent: one failed route rolls back alone
				// and the run moves on to the next
				if _, err := scheduleService.MaterializeRoute(ctx, spec); err != nil {
					logger.L.Error("route failed",
						zap.Int("flight_number", spec.FlightNumber),
						zap.Error(err),
					)
					failed++
				}
			}

			if failed > 0 {
				logger.L.Error("seed finished with failures",
					zap.Int("failed_routes", failed),
					zap.Int("total_routes", len(specs)),
				)
				os.Exit(1)
			}
		},
	}
	seedCmd.Flags().StringVar(&routesPath, "routes", defaultRoutesFile, "Path to the YAML route spec file")
	seedCmd.Flags().BoolVar(&warmCache, "warm-cache", false, "Warm per-flight ticket counts into Redis after commit")

	rootCmd.AddCommand(migrateCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
