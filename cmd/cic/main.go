package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-cic/internal/config"
	"github.com/napolitain/solver-cic/internal/converter"
	"github.com/napolitain/solver-cic/internal/loader"
	"github.com/napolitain/solver-cic/internal/logger"
	"github.com/napolitain/solver-cic/internal/solver/crafting"
)

var (
	productsFile string
	targetsFile  string
	configFile   string
	logLevel     string
	seedMoney    float64
	rankStep     int
	quiet        bool
	nextOnly     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cic [products] [targets]",
		Short: "Crafting Idle Clicker upgrade planner",
		Long: `A greedy planner that finds how many ticks it takes to raise
every product of a Crafting Idle Clicker catalog to its target rank.`,
		Args: cobra.MaximumNArgs(2),
		Run:  runPlanner,
	}

	rootCmd.Flags().StringVarP(&productsFile, "products", "p", "", "Path to product catalog (JSON or YAML)")
	rootCmd.Flags().StringVarP(&targetsFile, "targets", "t", "", "Path to target ranks (JSON or YAML)")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to config file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().Float64Var(&seedMoney, "seed", config.DefaultSeedMoney, "Starting money")
	rootCmd.Flags().IntVar(&rankStep, "rank-step", config.DefaultRankStep, "Round desired ranks up to a multiple of this (1 disables)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the tick count")
	rootCmd.Flags().BoolVarP(&nextOnly, "next", "n", false, "Show only the next purchase")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runPlanner(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		color.Red("Error loading config: %v", err)
		os.Exit(1)
	}
	applyFlags(cmd, cfg, args)

	logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	ctx := logger.WithRunID(context.Background(), logger.NewRunID())
	log := logger.FromContext(ctx)

	if !quiet && !nextOnly {
		printBanner(os.Stdout)
	}

	catalog, err := loader.LoadProducts(cfg.Data.Products)
	if err != nil {
		color.Red("Error loading products: %v", err)
		os.Exit(1)
	}
	targets, err := loader.LoadTargets(cfg.Data.Targets)
	if err != nil {
		color.Red("Error loading targets: %v", err)
		os.Exit(1)
	}

	// every bad product/input pair is reported before giving up
	if err := catalog.Check(); err != nil {
		printCatalogErrors(os.Stdout, err)
		os.Exit(1)
	}

	if !quiet && !nextOnly {
		color.New(color.FgYellow).Printf("📦 Loaded %d products, %d targets\n\n", catalog.Len(), len(targets))
	}

	solver, err := crafting.NewSolver(catalog, targets,
		crafting.WithSeedMoney(cfg.Planner.SeedMoney),
		crafting.WithRankStep(cfg.Planner.RankStep),
		crafting.WithLogger(log),
	)
	if err != nil {
		color.Red("Invalid targets: %v", err)
		os.Exit(1)
	}

	solution, err := solver.Solve()
	if err != nil {
		log.Error("plan failed", "kind", converter.ErrorKind(err), "error", err)
		color.Red("Error planning: %v", err)
		os.Exit(1)
	}

	log.Info("plan computed",
		"products", cfg.Data.Products,
		"ticks", solution.TickCount,
		"purchases", len(solution.Purchases))

	switch {
	case nextOnly:
		printNextPurchase(os.Stdout, solution)
	case quiet:
		printTicks(os.Stdout, solution)
	default:
		printPurchaseOrder(os.Stdout, solution)
		printTicks(os.Stdout, solution)
		printSummary(os.Stdout, solution)
	}
}

// applyFlags lets positional arguments and explicitly set flags win over
// the config file
func applyFlags(cmd *cobra.Command, cfg *config.Config, args []string) {
	if len(args) > 0 {
		cfg.Data.Products = args[0]
	}
	if len(args) > 1 {
		cfg.Data.Targets = args[1]
	}

	flags := cmd.Flags()
	if flags.Changed("products") {
		cfg.Data.Products = productsFile
	}
	if flags.Changed("targets") {
		cfg.Data.Targets = targetsFile
	}
	if flags.Changed("seed") {
		cfg.Planner.SeedMoney = seedMoney
	}
	if flags.Changed("rank-step") {
		cfg.Planner.RankStep = rankStep
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
}
