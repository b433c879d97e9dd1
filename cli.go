package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"markergo/marker"
)

var errHelp = errors.New("help requested")

// cliFlags records the flags given on the command line. Nil fields were
// not set and leave the config value alone.
type cliFlags struct {
	configPath  string
	verbose     bool
	output      *string
	size        *int
	fill        *string
	border      *int
	borderColor *string
	antialias   bool
}

func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}

	next := func(i *int) (string, error) {
		name := args[*i]
		*i++
		if *i >= len(args) {
			return "", fmt.Errorf("%s requires a value", name)
		}
		return args[*i], nil
	}
	nextInt := func(i *int) (*int, error) {
		name := args[*i]
		v, err := next(i)
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q", name, v)
		}
		return &n, nil
	}

	for i := 0; i < len(args); i++ {
		var err error
		switch args[i] {
		case "-h", "--help":
			return nil, errHelp
		case "--config":
			f.configPath, err = next(&i)
		case "--out", "-o":
			var v string
			if v, err = next(&i); err == nil {
				f.output = &v
			}
		case "--size":
			f.size, err = nextInt(&i)
		case "--fill":
			var v string
			if v, err = next(&i); err == nil {
				f.fill = &v
			}
		case "--border":
			f.border, err = nextInt(&i)
		case "--border-color":
			var v string
			if v, err = next(&i); err == nil {
				f.borderColor = &v
			}
		case "--antialias":
			f.antialias = true
		case "-v", "--verbose":
			f.verbose = true
		default:
			return nil, fmt.Errorf("unknown argument: %s", args[i])
		}
		if err != nil {
			return nil, err
		}
	}
	return f, nil
}

// apply overrides c with every flag that was set.
func (f *cliFlags) apply(c *Config) {
	if f.output != nil {
		c.Output = *f.output
	}
	if f.size != nil {
		c.Size = *f.size
	}
	if f.fill != nil {
		c.Fill = *f.fill
	}
	if f.border != nil {
		c.Border = *f.border
	}
	if f.borderColor != nil {
		c.BorderColor = *f.borderColor
	}
	if f.antialias {
		c.Antialias = true
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: markergo [flags]\n\nGenerates the driver marker PNG.\n\nFlags:\n"+
		"  --out, -o PATH        output file (default %s)\n"+
		"  --size N              image width and height in pixels (default %d)\n"+
		"  --fill HEX            fill color (default %s)\n"+
		"  --border N            border width in pixels (default %d)\n"+
		"  --border-color HEX    border color (default %s)\n"+
		"  --antialias           smooth edges by pixel coverage\n"+
		"  --config FILE         JSON file with any of the settings above\n"+
		"  --verbose, -v         debug logging\n",
		marker.DefaultOutput, marker.DefaultSize, marker.HexColor(marker.DefaultFill),
		marker.DefaultBorder, marker.HexColor(marker.DefaultBorderColor))
}

func newLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)
	return logger
}

// run executes the command and returns the process exit code:
// 0 on success, 1 on generation failure, 2 on bad usage.
func run(args []string, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)

	flags, err := parseFlags(args)
	if errors.Is(err, errHelp) {
		usage(stderr)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n\n", err)
		usage(stderr)
		return 2
	}
	if flags.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := LoadConfig(flags.configPath)
	if err != nil {
		logger.WithError(err).Error("failed to load config")
		return 1
	}
	flags.apply(cfg)

	opts, err := cfg.MarkerOptions()
	if err != nil {
		logger.WithError(err).Error("invalid marker settings")
		return 2
	}
	gen, err := marker.New(opts, logger)
	if err != nil {
		logger.WithError(err).Error("invalid marker settings")
		return 2
	}

	if err := gen.Generate(cfg.Output); err != nil {
		logger.WithError(err).WithField("path", cfg.Output).Error("failed to generate driver marker")
		return 1
	}

	fmt.Fprintf(stdout, "Driver marker created at %s\n", cfg.Output)
	return 0
}
