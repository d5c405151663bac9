package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bdtaxlab/bdtax/internal/calculation"
	"github.com/bdtaxlab/bdtax/internal/compare"
	"github.com/bdtaxlab/bdtax/internal/config"
	"github.com/bdtaxlab/bdtax/internal/obs"
	"github.com/bdtaxlab/bdtax/internal/output"
	"github.com/bdtaxlab/bdtax/internal/server"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "bdtax",
	Short: "Bangladesh individual income tax calculator",
	Long:  "Computes Bangladesh individual income tax from salary components: progressive slabs, investment rebate, wealth surcharge, minimum tax, and advance-tax credit",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate tax for a YAML scenario file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewEngine()
		result := engine.Calculate(input)

		format, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			log.Fatalf("unsupported format %q (available: %s)", format, strings.Join(output.FormatterNames(), ", "))
		}
		data, err := formatter.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare the liability across all supported assessment years",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := compare.NewCompareEngine(calculation.NewEngine())
		set := engine.Compare(input)

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "table":
			fmt.Print((&compare.TableFormatter{}).Format(set))
		case "json":
			out, err := (&compare.JSONFormatter{Pretty: true}).Format(set)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(out)
		case "csv":
			out, err := (&compare.CSVFormatter{}).Format(set)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(out)
		default:
			log.Fatalf("unsupported format %q (available: table, json, csv)", format)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a scenario file and show the normalized input",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Scenario file %s is valid\n", args[0])
		fmt.Printf("  Assessment Year: %s\n", input.Year)
		fmt.Printf("  Total Earnings:  %s\n", output.FormatCurrency(input.TotalEarnings()))
		fmt.Printf("  Minimum Tax Zone: %s\n", input.MinTaxZone)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP calculator service",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadServer()
		if err != nil {
			log.Fatal(err)
		}
		logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(cfg, logger)
		if err := srv.Run(ctx); err != nil {
			logger.Fatal().Err(err).Msg("server exited")
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "bdtax %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintln(os.Stdout, bi.Main.Path)
		}
	},
}

func main() {
	calculateCmd.Flags().String("format", "console", "Output format: "+strings.Join(output.FormatterNames(), ", "))
	compareCmd.Flags().String("format", "table", "Output format: table, json, csv")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
