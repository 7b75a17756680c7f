// Command planner builds travel approval documents from configuration files
// without running the API server.
//
//	planner template --format csv > trip.csv
//	planner render -f trip.csv --format text
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pkordes/travel-approval/internal/document"
	"github.com/pkordes/travel-approval/internal/service"
	"github.com/pkordes/travel-approval/internal/transfer"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree. Streams are injected so tests can
// run commands in-process.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "planner",
		Short:        "Build travel plans and approval emails from trip configuration files",
		SilenceUsage: true,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	logger := func() *slog.Logger {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	}

	root.AddCommand(
		newRenderCmd(logger),
		newTemplateCmd(logger),
		newUniversitiesCmd(logger),
	)
	return root
}

func newRenderCmd(logger func() *slog.Logger) *cobra.Command {
	var (
		file        string
		inputFormat string
		outFormat   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Import a configuration file onto the defaults and print the plan",
		Long: "Reads a CSV or JSON configuration (use -f - for stdin), applies it over the\n" +
			"default form values, builds the plan and prints it as text, html or json.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger()
			ctx := cmd.Context()

			in, err := openInput(cmd, file)
			if err != nil {
				return err
			}
			defer in.Close()

			tf, err := transfer.ParseFormat(pickInputFormat(inputFormat, file))
			if err != nil {
				return err
			}

			configs := service.NewConfigService(log)
			cfg, err := configs.Import(ctx, configs.Defaults(), in, tf)
			if err != nil {
				return err
			}

			plans := service.NewPlanService(log)
			if strings.EqualFold(outFormat, "json") {
				plan, err := plans.Generate(ctx, cfg)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}

			df, err := document.ParseFormat(outFormat)
			if err != nil {
				return err
			}
			_, err = plans.Render(ctx, cmd.OutOrStdout(), cfg, df)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Configuration file to read (- for stdin)")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "csv or json (default: from the file extension, else csv)")
	cmd.Flags().StringVar(&outFormat, "format", "text", "Output: text, html or json")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newTemplateCmd(logger func() *slog.Logger) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print the default configuration as an editable file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := transfer.ParseFormat(format)
			if err != nil {
				return err
			}
			configs := service.NewConfigService(logger())
			return configs.Export(cmd.Context(), cmd.OutOrStdout(), configs.Defaults(), f)
		},
	}
	cmd.Flags().StringVar(&format, "format", "csv", "csv or json")
	return cmd
}

func newUniversitiesCmd(logger func() *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "universities",
		Short: "List the known universities and their cities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "UNIVERSITY\tCITY")
			for _, u := range service.NewConfigService(logger()).Universities() {
				fmt.Fprintf(tw, "%s\t%s\n", u.Name, u.City)
			}
			return tw.Flush()
		},
	}
}

func openInput(cmd *cobra.Command, file string) (io.ReadCloser, error) {
	if file == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open configuration: %w", err)
	}
	return f, nil
}

// pickInputFormat prefers an explicit flag, then the file extension.
func pickInputFormat(flag, file string) string {
	if flag != "" {
		return flag
	}
	if strings.EqualFold(filepath.Ext(file), ".json") {
		return string(transfer.FormatJSON)
	}
	return string(transfer.FormatCSV)
}
