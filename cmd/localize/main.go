package main

import (
	"fmt"
	"os"

	"github.com/goliatone/go-localize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "localize: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "localize",
		Short:         "Convert locale formatted values to and from canonical form",
		Long:          "Parse localized dates and numbers into canonical storage values, and render canonical values for a locale.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("locale", "", "locale to use (default LOCALIZE_LOCALE or "+localize.DefaultLocale+")")
	root.PersistentFlags().StringSlice("formats", nil, "format bundle files (.json, .yaml, .toml)")
	root.PersistentFlags().Bool("verbose", false, "log conversion details")

	root.AddCommand(newParseCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newLocalesCmd())

	return root
}

// buildConfig assembles the config from the environment, then flags
func buildConfig(cmd *cobra.Command) (*localize.Config, error) {
	flags := cmd.Root().PersistentFlags()

	locale, err := flags.GetString("locale")
	if err != nil {
		return nil, err
	}
	files, err := flags.GetStringSlice("formats")
	if err != nil {
		return nil, err
	}
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return nil, err
	}

	opts := []localize.Option{localize.WithEnv()}
	if locale != "" {
		opts = append(opts, localize.WithDefaultLocale(locale))
	}
	if len(files) > 0 {
		opts = append(opts, localize.WithLoader(localize.NewFileLoader(files...)))
	}
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		opts = append(opts, localize.WithLogger(logger))
	}

	return localize.NewConfig(opts...)
}

func localeContext(cmd *cobra.Command) (localize.LocaleContext, *localize.Config, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return localize.LocaleContext{}, nil, err
	}

	localizer, err := cfg.BuildLocalizer()
	if err != nil {
		return localize.LocaleContext{}, nil, err
	}

	lc, err := localizer.Context()
	if err != nil {
		return localize.LocaleContext{}, nil, err
	}
	return lc, cfg, nil
}

func newLocalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List locales with a registered format bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			for _, locale := range cfg.FormatTable().Locales() {
				marker := " "
				if locale == cfg.DefaultLocale {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, locale)
			}
			return nil
		},
	}
}
