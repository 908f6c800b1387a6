package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/d21d3q/gobleadv/internal/assigned"
	"github.com/d21d3q/gobleadv/internal/config"
	"github.com/d21d3q/gobleadv/internal/logging"
	"github.com/d21d3q/gobleadv/pkg/bleadv"
)

var (
	rootCmd = &cobra.Command{
		Use:   "bleadv-analyze [hex]",
		Short: "Decode BLE advertising data",
		Long:  "bleadv-analyze decodes Bluetooth Low Energy advertising data payloads using the bleadv library.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			closer, err := logging.Setup(logrus.StandardLogger(), cfg.Log)
			if err != nil {
				return err
			}
			defer closer.Close()

			opts := bleadv.AnalyzeOptions{}
			if cfg.Tables.Path != "" {
				tables, err := assigned.Load(cfg.Tables.Path)
				if err != nil {
					return err
				}
				opts.Tables = tables
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return runInteractive(ctx, cmd.InOrStdin(), out, opts, cfg.Output.Format)
			}
			return runAnalyze(ctx, out, opts, cfg.Output.Format, args[0])
		},
	}

	configPath string
	tablesPath string
	format     string
	logLevel   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&tablesPath, "tables", "", "YAML overlay of assigned numbers (ad_types, service_uuids16, company_identifiers)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format: text or json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

// loadConfig applies command line flags on top of the configuration file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("tables") {
		cfg.Tables.Path = tablesPath
	}
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runInteractive(ctx context.Context, in io.Reader, out io.Writer, opts bleadv.AnalyzeOptions, format string) error {
	scanner := bufio.NewScanner(in)
	logrus.Info("bleadv analyze mode. Paste hex advertising data and press Enter (Ctrl+D to exit).")
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runAnalyze(ctx, out, opts, format, line); err != nil {
			logrus.WithError(err).Error("failed to decode advertising data")
		}
	}
	return scanner.Err()
}

func runAnalyze(ctx context.Context, out io.Writer, opts bleadv.AnalyzeOptions, format, hex string) error {
	result, err := bleadv.AnalyzeHexWithOptions(ctx, hex, opts)
	if err != nil {
		return err
	}
	if format == config.FormatJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	fmt.Fprintln(out, result.String())
	return nil
}
