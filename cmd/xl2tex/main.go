// Command xl2tex converts a table in an Excel worksheet into a LaTeX tabular.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aerissecure/xl2tex"
	"github.com/aerissecure/xl2tex/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
		flags      config.Config
	)

	cmd := &cobra.Command{
		Use:   "xl2tex <file.xlsx>",
		Short: "Convert a spreadsheet table into a LaTeX tabular",
		Long: "Reads one worksheet, finds the table in it (or uses --range) and writes a LaTeX tabular " +
			"keeping rounding, bold/italic, colours, merged cells and border rules.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			applyFlags(cmd, &cfg, flags)
			if err := cfg.Validate(); err != nil {
				return err
			}

			out, err := xl2tex.ConvertFile(args[0], xl2tex.Options{
				Sheet:    cfg.Sheet,
				Range:    cfg.Range,
				Reader:   cfg.Reader,
				Settings: cfg.Settings,
				Logger:   log,
			})
			if err != nil {
				log.WithError(err).WithField("input", args[0]).Error("conversion failed")
				return err
			}

			if cfg.Output == "" || cfg.Output == "-" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			}
			if err := os.WriteFile(cfg.Output, []byte(out), 0644); err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"input":  args[0],
				"output": cfg.Output,
				"bytes":  len(out),
			}).Info("table written")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML settings file")
	f.StringVarP(&flags.Output, "output", "o", "", "output .tex file (default stdout)")
	f.StringVar(&flags.Sheet, "sheet", "", "worksheet name (default first sheet)")
	f.StringVar(&flags.Range, "range", "", "explicit table range such as B2:F10")
	f.StringVar(&flags.Reader, "reader", "", "spreadsheet reader: unioffice or excelize")
	f.BoolVar(&flags.RoundToDP, "round", false, "round numeric cells")
	f.IntVar(&flags.NumDP, "dp", 2, "decimal places used with --round")
	f.BoolVar(&flags.Booktabs, "booktabs", true, "use booktabs rules")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config, flags config.Config) {
	changed := cmd.Flags().Changed
	if changed("output") {
		cfg.Output = flags.Output
	}
	if changed("sheet") {
		cfg.Sheet = flags.Sheet
	}
	if changed("range") {
		cfg.Range = flags.Range
	}
	if changed("reader") {
		cfg.Reader = flags.Reader
	}
	if changed("round") {
		cfg.RoundToDP = flags.RoundToDP
	}
	if changed("dp") {
		cfg.NumDP = flags.NumDP
	}
	if changed("booktabs") {
		cfg.Booktabs = flags.Booktabs
	}
}
