package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"jira-mr-linker/models"
	"jira-mr-linker/services"
)

var Logger *zap.Logger

// InitLogger initializes the global logger with appropriate configuration
func InitLogger(config *models.Config) {
	level := getLogLevel(config.Logging.Level)

	var encoderConfig zapcore.EncoderConfig
	if config.Logging.Format == models.LogFormatJSON {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		// Console format (default)
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var core zapcore.Core
	if config.Logging.Format == models.LogFormatJSON {
		core = zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			level,
		)
	} else {
		core = zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			level,
		)
	}

	Logger = zap.New(core)
}

// getLogLevel returns the log level based on config
func getLogLevel(level models.LogLevel) zapcore.Level {
	switch level {
	case models.LogLevelDebug:
		return zapcore.DebugLevel
	case models.LogLevelInfo:
		return zapcore.InfoLevel
	case models.LogLevelWarn:
		return zapcore.WarnLevel
	case models.LogLevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to configuration file (optional, uses defaults and environment variables by default)")
	var csvOutput string
	flag.StringVar(&csvOutput, "csv-output", "", "Export the report to a CSV file (e.g. report.csv)")
	flag.StringVar(&csvOutput, "c", "", "Shorthand for -csv-output")
	flag.Parse()

	// Load configuration
	config, err := models.LoadConfig(*configPath)
	if err != nil {
		// Use fmt for this error since logger isn't initialized yet
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	InitLogger(config)
	defer func() { _ = Logger.Sync() }()

	if err := run(config, csvOutput); err != nil {
		Logger.Error("Run failed", zap.Error(err))
		_ = Logger.Sync()
		os.Exit(1)
	}
}

// run wires the sources, linker, reporter and exporter and executes one report
func run(config *models.Config, csvOutput string) error {
	ticketSource, mergeRequestSource, err := buildSources(config)
	if err != nil {
		return err
	}

	extractor, err := services.NewTicketExtractor(config.Linker.TicketPrefix)
	if err != nil {
		return err
	}

	linker := services.NewLinker(ticketSource, mergeRequestSource, extractor, Logger)
	report, err := linker.Link()
	if err != nil {
		return err
	}

	allTickets, err := ticketSource.ListTickets()
	if err != nil {
		return fmt.Errorf("failed to list tickets: %w", err)
	}

	// Always render the console report
	reporter := services.NewReporter(os.Stdout)
	reporter.Render(report, allTickets)

	// Optional CSV export
	if csvOutput != "" {
		exporter := services.NewExporter(Logger)
		if err := exporter.Export(report, allTickets, csvOutput); err != nil {
			return err
		}
	}

	return nil
}

// buildSources selects the ticket and merge request backends per configuration.
// The fixture dataset is the default for both.
func buildSources(config *models.Config) (services.TicketSource, services.MergeRequestSource, error) {
	var fixture *services.FixtureData
	if config.Sources.Tickets == models.SourceFixture || config.Sources.MergeRequests == models.SourceFixture {
		fixture = services.DefaultFixtureData()
		if config.Fixture.DataFile != "" {
			loaded, err := services.LoadFixtureData(config.Fixture.DataFile)
			if err != nil {
				return nil, nil, err
			}
			fixture = loaded
		}
	}

	var ticketSource services.TicketSource
	switch config.Sources.Tickets {
	case models.SourceJira:
		ticketSource = services.NewJiraTicketSource(config, Logger)
		Logger.Info("Using Jira ticket source", zap.String("base_url", config.Jira.BaseURL))
	default:
		ticketSource = services.NewFixtureTicketSource(fixture.Tickets)
		Logger.Info("Using fixture ticket source")
	}

	var mergeRequestSource services.MergeRequestSource
	switch config.Sources.MergeRequests {
	case models.SourceGitLab:
		source, err := services.NewGitLabMergeRequestSource(config, Logger)
		if err != nil {
			return nil, nil, err
		}
		mergeRequestSource = source
		Logger.Info("Using GitLab merge request source", zap.String("project", config.GitLab.ProjectID))
	default:
		mergeRequestSource = services.NewFixtureMergeRequestSource(fixture.MergeRequests)
		Logger.Info("Using fixture merge request source")
	}

	return ticketSource, mergeRequestSource, nil
}
