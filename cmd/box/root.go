package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/boxtools/internal/box"
	"github.com/ShayCichocki/boxtools/internal/cliout"
	"github.com/ShayCichocki/boxtools/internal/config"
	"github.com/ShayCichocki/boxtools/internal/debuglog"
	"github.com/ShayCichocki/boxtools/internal/version"
)

// rootFlags holds the values bound to the root command's flags.
type rootFlags struct {
	style       string
	padding     int
	input       string
	title       string
	borderColor string
	debugLog    string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "box",
		Short: "Draw a border around text",
		Long: `Box reads lines from a file or standard input and prints them inside a
rectangular border.

Styles: simple, double, rounded, thick, ascii.

Defaults for --style, --padding and --border-color can be set in
~/.config/boxtools/config.yaml, in a project .boxtools.yaml, or through
BOXTOOLS_BOX_* environment variables. Flags always win.

Examples:
  echo hello | box
  box --style rounded --title Notes --input notes.txt
  box --padding 0 --style ascii < README`,
		Args:          cobra.NoArgs,
		Version:       version.Get(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBox(cmd, flags, stdin, stdout)
		},
	}

	cmd.SetVersionTemplate(version.Template("box"))
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	defaults := box.DefaultOptions()
	cmd.Flags().StringVar(&flags.style, "style", defaults.Style.String(), "Border style (simple, double, rounded, thick, ascii)")
	cmd.Flags().IntVar(&flags.padding, "padding", defaults.Padding, "Blank columns between the border and the text")
	cmd.Flags().StringVar(&flags.input, "input", "", "Read text from FILE instead of standard input")
	cmd.Flags().StringVar(&flags.title, "title", "", "Title drawn inside the top border")
	cmd.Flags().StringVar(&flags.borderColor, "border-color", "", "Border color (ANSI number or #hex)")
	cmd.Flags().StringVar(&flags.debugLog, "debug-log", "", "Append a debug trace to FILE")

	cmd.AddCommand(newStylesCmd(stdout))
	cmd.AddCommand(newConfigCmd(stdout))

	return cmd
}

// execute runs the box command with args and returns the process exit code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}

	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		cliout.PrintError(stderr, err)
		return 1
	}
	return 0
}

// resolveOptions merges configuration defaults with explicitly set flags
// and validates the result. Nothing is read or written here.
func resolveOptions(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) (box.Options, error) {
	styleName := cfg.Box.Style
	if cmd.Flags().Changed("style") {
		styleName = flags.style
	}
	style, err := box.ParseStyle(styleName)
	if err != nil {
		return box.Options{}, err
	}

	padding := cfg.Box.Padding
	if cmd.Flags().Changed("padding") {
		padding = flags.padding
	}

	borderColor := cfg.Box.BorderColor
	if cmd.Flags().Changed("border-color") {
		borderColor = flags.borderColor
	}

	opts := box.Options{
		Style:       style,
		Padding:     padding,
		Title:       flags.title,
		BorderColor: borderColor,
	}
	if err := opts.Validate(); err != nil {
		return box.Options{}, err
	}
	return opts, nil
}

func runBox(cmd *cobra.Command, flags *rootFlags, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logPath := cfg.Log.DebugFile
	if flags.debugLog != "" {
		logPath = flags.debugLog
	}
	logger, err := debuglog.New(logPath, "box")
	if err != nil {
		return err
	}
	defer logger.Close()

	opts, err := resolveOptions(cmd, flags, cfg)
	if err != nil {
		logger.Log("invalid options: %v", err)
		return err
	}
	logger.Log("options: style=%s padding=%d title=%q border_color=%q", opts.Style, opts.Padding, opts.Title, opts.BorderColor)

	doc, err := box.LoadDocument(flags.input, stdin)
	if err != nil {
		logger.Log("load input %q: %v", flags.input, err)
		return err
	}

	layout := box.ComputeLayout(doc, opts)
	logger.Log("document: lines=%d max_width=%d box_width=%d content_width=%d",
		len(doc), layout.MaxWidth, layout.BoxWidth, layout.ContentWidth)

	out, err := box.Render(doc, opts)
	if err != nil {
		return err
	}

	_, err = io.WriteString(stdout, out)
	return err
}
