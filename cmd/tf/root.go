package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/boxtools/internal/cliout"
	"github.com/ShayCichocki/boxtools/internal/config"
	"github.com/ShayCichocki/boxtools/internal/debuglog"
	"github.com/ShayCichocki/boxtools/internal/timefrac"
	"github.com/ShayCichocki/boxtools/internal/version"
)

// errUsage marks a run that only printed usage.
var errUsage = errors.New("usage")

type rootFlags struct {
	precision int
	debugLog  string
}

func newRootCmd(stdout, stderr io.Writer, helpShown *bool) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "tf TIME1/TIME2",
		Short: "Print the ratio of two durations",
		Long: `tf divides one duration by another and prints the quotient.

Each TIME is [[H:]M:]S. Minutes and seconds must be between 0 and 59;
hours may exceed 23. Whitespace is ignored.

Examples:
  tf 1:00:00/2:00:00   # 0.5
  tf 45/90             # 0.5
  tf 25:00/1:00:00     # 0.416667`,
		Version:       version.Get(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				// usage is best effort; the exit code already reports the failure
				_ = cmd.Help()
				return errUsage
			}
			return runFraction(cmd, flags, args[0], stdout)
		},
	}

	cmd.SetVersionTemplate(version.Template("tf"))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		*helpShown = true
		defaultHelp(c, args)
	})

	cmd.Flags().IntVar(&flags.precision, "precision", timefrac.DefaultPrecision, "Significant digits in the result")
	cmd.Flags().StringVar(&flags.debugLog, "debug-log", "", "Append a debug trace to FILE")

	return cmd
}

// execute runs tf with args and returns the process exit code. Showing
// help counts as a failed run and exits 1.
func execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}

	var helpShown bool
	cmd := newRootCmd(stdout, stderr, &helpShown)
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case helpShown || errors.Is(err, errUsage):
		return 1
	case err != nil:
		cliout.PrintError(stderr, err)
		return 1
	}
	return 0
}

func runFraction(cmd *cobra.Command, flags *rootFlags, arg string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logPath := cfg.Log.DebugFile
	if flags.debugLog != "" {
		logPath = flags.debugLog
	}
	logger, err := debuglog.New(logPath, "tf")
	if err != nil {
		return err
	}
	defer logger.Close()

	precision := cfg.Fraction.Precision
	if cmd.Flags().Changed("precision") {
		precision = flags.precision
	}
	if precision < 1 {
		return fmt.Errorf("invalid precision %d: must be at least 1", precision)
	}

	res, err := timefrac.Compute(arg, precision)
	if err != nil {
		logger.Log("compute %q: %v", arg, err)
		return err
	}
	f := res.Fraction
	logger.Log("parsed %q: %s (%ds) / %s (%ds)", arg,
		f.Numerator, f.Numerator.TotalSeconds(), f.Denominator, f.Denominator.TotalSeconds())
	logger.Log("result: %s (precision %d)", res.Formatted, precision)

	_, err = fmt.Fprintln(stdout, res.Formatted)
	return err
}
