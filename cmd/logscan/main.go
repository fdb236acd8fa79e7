package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/awais-ramzan/log-security-analyzer/internal/adapters/input"
	"github.com/awais-ramzan/log-security-analyzer/internal/adapters/output"
	"github.com/awais-ramzan/log-security-analyzer/internal/app"
	"github.com/awais-ramzan/log-security-analyzer/internal/ports"
)

var (
	cfgFile    string
	logFile    string
	outputPath string
	jsonOut    bool
	workers    int

	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "logscan",
	Short: "Offline brute-force detection for authentication logs",
	Long: `logscan makes a single offline pass over an authentication or access
log and reports indicators of credential-guessing activity.

Detection Capabilities:
  - Per-IP failed login counts against a static threshold
  - Sliding time-window brute force bursts
  - Username enumeration (many distinct usernames from one IP)

Supported timestamp formats are bare syslog ("Jan 15 10:30:45") and
bracketed access-log ("[15/Jan/2025:10:30:45").`,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a log file and print the report",
	Long: `Analyze the given log file in one pass and print a security report.

Examples:
  logscan analyze --log /var/log/auth.log
  logscan analyze --log ./auth.log --output reports/auth.txt
  logscan analyze --log ./access.log --json`,
	RunE: runAnalyze,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("logscan %s\n", Version)
		fmt.Printf("Commit:  %s\n", Commit)
		fmt.Printf("Built:   %s\n", BuildTime)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&logFile, "log", "f", "", "log file to analyze")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "save report to file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output report as JSON")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "extraction worker goroutines")

	viper.BindPFlag("log.path", rootCmd.PersistentFlags().Lookup("log"))
	viper.BindPFlag("output.json.enabled", rootCmd.PersistentFlags().Lookup("json"))

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/logscan")
	}

	viper.SetDefault("workers.count", 4)
	viper.SetDefault("detection.brute_force_threshold", 3)
	viper.SetDefault("detection.time_window_threshold", 10)
	viper.SetDefault("detection.time_window_minutes", 5)
	viper.SetDefault("detection.multiple_username_threshold", 3)
	viper.SetDefault("output.json.enabled", false)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn().Err(err).Msg("Error reading config file, using defaults")
		}
	}

	viper.SetEnvPrefix("LOGSCAN")
	viper.AutomaticEnv()
}

func setupLogging() {
	level := viper.GetString("logging.level")
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	setupLogging()

	logPath := viper.GetString("log.path")
	if logFile != "" {
		logPath = logFile
	}
	if logPath == "" {
		return fmt.Errorf("log file path required: use --log")
	}

	cfg := app.ConfigFromViper(viper.GetViper())
	if workers > 0 {
		cfg.Workers = workers
	}

	log.Info().
		Str("source", logPath).
		Int("workers", cfg.Workers).
		Int("keywords", len(cfg.Keywords)).
		Msg("logscan started")

	source := input.NewFileSource(logPath)
	analyzer := app.NewAnalyzer(source, cfg)

	report, err := analyzer.Run(context.Background())
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if report.TotalLines == 0 {
		fmt.Println("No log entries found.")
		return nil
	}

	var renderer ports.ReportRenderer
	if jsonOut || viper.GetBool("output.json.enabled") {
		renderer = output.NewJSONRenderer()
	} else {
		renderer = output.NewTextRenderer()
	}

	rendered, err := renderer.Render(report)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if outputPath != "" {
		if err := output.WriteFile(outputPath, rendered); err != nil {
			return err
		}
		fmt.Printf("Report saved to: %s\n", outputPath)
		return nil
	}

	fmt.Print(rendered)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
