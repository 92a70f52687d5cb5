// Package main provides the CLI entry point for surveytab.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/surveytab/surveytab/pkg/surveytab"
	"github.com/surveytab/surveytab/pkg/surveytab/config"
	"github.com/surveytab/surveytab/pkg/surveytab/models"
	"github.com/surveytab/surveytab/pkg/surveytab/output"
)

var (
	cfgFile     string
	sheet       string
	format      string
	outputPath  string
	pretty      bool
	noColor     bool
	verbose     bool
	topN        int
	maxLabelLen int
	metricFlag  string
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "surveytab",
		Short: "Tabulate spreadsheet survey raw data",
		Long: `surveytab reads survey raw data from an Excel workbook, classifies
columns into single-answer questions and multiple-answer groups
("Question - Option" binary columns), and computes frequency tables
and crosstabs with chart-ready Top-N display views.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&sheet, "sheet", "", "worksheet to read (default: first sheet with data)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "output format: text, json, csv, markdown")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "output file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "pretty-print JSON output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().IntVar(&topN, "top-n", 0, "display rows before the Other bucket (5-30)")
	rootCmd.PersistentFlags().IntVar(&maxLabelLen, "max-label", 0, "display label length limit in runes (8-60)")
	rootCmd.PersistentFlags().StringVar(&metricFlag, "metric", "", "metric: counts, row%, col%")

	rootCmd.AddCommand(newGroupsCommand())
	rootCmd.AddCommand(newFreqCommand())
	rootCmd.AddCommand(newCrosstabCommand())

	return rootCmd
}

// settings are the resolved per-invocation parameters: config file
// values overridden by any flag the user set.
type settings struct {
	opts   surveytab.Options
	format string
	color  bool
}

func resolveSettings(cmd *cobra.Command) (*settings, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("top-n") {
		cfg.TopN = topN
	}
	if flags.Changed("max-label") {
		cfg.MaxLabelLen = maxLabelLen
	}
	if flags.Changed("metric") {
		cfg.Metric = metricFlag
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("sheet") {
		cfg.Sheet = sheet
	}

	metric, err := models.ParseMetric(cfg.Metric)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &settings{
		opts: surveytab.Options{
			Sheet:       cfg.Sheet,
			TopN:        &cfg.TopN,
			MaxLabelLen: &cfg.MaxLabelLen,
			Metric:      metric,
		},
		format: cfg.Format,
		color:  cfg.ColorMode == "always" || (cfg.ColorMode == "auto" && !noColor),
	}, nil
}

func loadSurvey(cmd *cobra.Command, args []string) (*surveytab.Survey, *settings, output.Formatter, error) {
	s, err := resolveSettings(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	f, err := output.New(s.format, s.color, pretty)
	if err != nil {
		return nil, nil, nil, err
	}

	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, nil, nil, fmt.Errorf("file not found: %s", inputPath)
	}

	survey, err := surveytab.Load(inputPath, s.opts)
	if err != nil {
		return nil, nil, nil, err
	}
	return survey, s, f, nil
}

func newGroupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "groups [input.xlsx]",
		Short: "Show the detected MA groups and SA columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			survey, _, f, err := loadSurvey(cmd, args)
			if err != nil {
				return err
			}
			if survey.Table.RowCount() == 0 {
				return printInfo(cmd, "no data rows in sheet %q", survey.Table.Sheet)
			}
			if !survey.Classes.HasGroups() {
				fmt.Fprintln(cmd.ErrOrStderr(), surveytab.ErrNoMAGroups.Error())
			}

			data, err := f.FormatClassification(survey.Classes)
			if err != nil {
				return err
			}
			return writeOutput(data)
		},
	}
}

func newFreqCommand() *cobra.Command {
	var question, group string

	cmd := &cobra.Command{
		Use:   "freq [input.xlsx]",
		Short: "Compute a frequency table for an SA question or MA group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (question == "") == (group == "") {
				return errors.New("exactly one of --question or --group is required")
			}

			survey, s, f, err := loadSurvey(cmd, args)
			if err != nil {
				return err
			}
			if survey.Table.RowCount() == 0 {
				return printInfo(cmd, "no data rows in sheet %q", survey.Table.Sheet)
			}

			var ft *models.FrequencyTable
			var view *models.DisplayTable
			if question != "" {
				ft, view, err = survey.SAFrequency(question, s.opts)
			} else {
				ft, view, err = survey.MAFrequency(group, s.opts)
			}
			if errors.Is(err, surveytab.ErrNoMAGroups) {
				return printInfo(cmd, "%v", err)
			}
			if err != nil {
				return err
			}

			data, err := f.FormatFrequency(ft, view)
			if err != nil {
				return err
			}
			return writeOutput(data)
		},
	}

	cmd.Flags().StringVarP(&question, "question", "q", "", "SA question column")
	cmd.Flags().StringVarP(&group, "group", "g", "", "MA question group")
	return cmd
}

func newCrosstabCommand() *cobra.Command {
	var rowQ, colQ, group, option string

	cmd := &cobra.Command{
		Use:   "crosstab [input.xlsx]",
		Short: "Cross-tabulate two SA questions, or an SA question by one MA option",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rowQ == "" {
				return errors.New("--row is required")
			}
			saXsa := colQ != ""
			saXma := group != "" || option != ""
			if saXsa == saXma {
				return errors.New("use either --col, or --group with --option")
			}
			if saXma && (group == "" || option == "") {
				return errors.New("--group and --option are both required for the MA crosstab")
			}

			survey, s, f, err := loadSurvey(cmd, args)
			if err != nil {
				return err
			}
			if survey.Table.RowCount() == 0 {
				return printInfo(cmd, "no data rows in sheet %q", survey.Table.Sheet)
			}

			var data []byte
			if saXsa {
				ct, view, err := survey.CrossTabulate(rowQ, colQ, s.opts)
				if err != nil {
					return err
				}
				data, err = f.FormatCrosstab(ct, view)
				if err != nil {
					return err
				}
			} else {
				ft, view, err := survey.FilteredFrequency(group, option, rowQ, s.opts)
				if errors.Is(err, surveytab.ErrNoMAGroups) {
					return printInfo(cmd, "%v", err)
				}
				if err != nil {
					return err
				}
				data, err = f.FormatFrequency(ft, view)
				if err != nil {
					return err
				}
			}
			return writeOutput(data)
		},
	}

	cmd.Flags().StringVar(&rowQ, "row", "", "row (base) SA question")
	cmd.Flags().StringVar(&colQ, "col", "", "column (comparison) SA question")
	cmd.Flags().StringVarP(&group, "group", "g", "", "comparison MA question group")
	cmd.Flags().StringVar(&option, "option", "", "MA option to filter respondents by")
	return cmd
}

// printInfo reports a no-data condition: informational, not a failure.
func printInfo(cmd *cobra.Command, msg string, args ...interface{}) error {
	fmt.Fprintf(cmd.ErrOrStderr(), msg+"\n", args...)
	return nil
}

func writeOutput(data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(data))
	return nil
}
