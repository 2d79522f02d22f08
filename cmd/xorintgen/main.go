package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/xorint/internal/keygen"
)

const defaultOutput = "zz_keys_generated.go"

// CLIConfig holds the parsed command line.
type CLIConfig struct {
	manifest string
	pkg      string
	out      string
	widths   bool
	salt     string
	logLevel string
	help     bool
}

// parseCLIFlags parses args into a CLIConfig.
func parseCLIFlags(args []string, output io.Writer) (*CLIConfig, *flag.FlagSet, error) {
	config := &CLIConfig{}
	fs := flag.NewFlagSet("xorintgen", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&config.manifest, "manifest", "", "YAML key manifest")
	fs.StringVar(&config.pkg, "package", "", "Package clause of the generated file")
	fs.StringVar(&config.out, "out", "", "Output file")
	fs.BoolVar(&config.widths, "widths", false, "Emit the per-width keys")
	fs.StringVar(&config.salt, "salt", "", "Build salt (default: current UTC time)")
	fs.StringVar(&config.logLevel, "log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	fs.BoolVar(&config.help, "help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	return config, fs, nil
}

// printUsage prints the usage information.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "xorintgen derives xorint keys and writes them as Go literals.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  xorintgen [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  xorintgen -package xorint -widths")
	fmt.Fprintln(w, "  xorintgen -manifest keys.yaml -salt release-1.4.0")
}

// validateCLIConfig validates the CLI configuration.
func validateCLIConfig(config *CLIConfig) error {
	if config.manifest == "" && !config.widths {
		return errors.New("either -manifest or -widths is required")
	}
	if _, err := logrus.ParseLevel(config.logLevel); err != nil {
		return fmt.Errorf("invalid log level %q", config.logLevel)
	}
	return nil
}

// setupLogging applies the configured log level.
func setupLogging(config *CLIConfig) {
	level, err := logrus.ParseLevel(config.logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

// buildManifest merges the manifest file with command-line overrides.
func buildManifest(config *CLIConfig, getenv func(string) string) (*keygen.Manifest, error) {
	m := &keygen.Manifest{}
	if config.manifest != "" {
		loaded, err := keygen.ReadManifest(config.manifest)
		if err != nil {
			return nil, err
		}
		m = loaded
	}

	if config.pkg != "" {
		m.Package = config.pkg
	}
	if m.Package == "" {
		m.Package = getenv("GOPACKAGE")
	}
	if config.out != "" {
		m.Output = config.out
	}
	if m.Output == "" {
		m.Output = defaultOutput
	}
	if config.widths {
		m.Widths = true
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// run generates the key file described by config.
func run(config *CLIConfig, tp keygen.TimeProvider, getenv func(string) string) error {
	m, err := buildManifest(config, getenv)
	if err != nil {
		return err
	}

	salt := config.salt
	saltSource := "flag"
	if salt == "" {
		salt = keygen.BuildSalt(tp)
		saltSource = "clock"
	}

	logrus.WithFields(logrus.Fields{
		"function":    "run",
		"package":     m.Package,
		"output":      m.Output,
		"widths":      m.Widths,
		"named_keys":  len(m.Keys),
		"salt_source": saltSource,
	}).Debug("Generating key file")

	if err := keygen.WriteFile(m.Output, m, salt); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "run",
			"output":   m.Output,
			"error":    err.Error(),
		}).Error("Key generation failed")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"function": "run",
		"output":   m.Output,
	}).Info("Key file written")
	return nil
}

func main() {
	config, fs, err := parseCLIFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if config.help {
		printUsage(os.Stdout, fs)
		os.Exit(0)
	}

	if err := validateCLIConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Use -help for usage information.\n")
		os.Exit(1)
	}

	setupLogging(config)

	if err := run(config, keygen.DefaultTimeProvider{}, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "xorintgen: %v\n", err)
		os.Exit(1)
	}
}
