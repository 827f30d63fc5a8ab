package main

import (
	"fmt"

	"github.com/goliatone/go-localize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <date|datetime|numeric> <value>",
		Short: "Convert a localized value to canonical form",
		Long:  "Convert a localized value to canonical form. Numbers that cannot be read are printed unchanged.",
		Args:  cobra.ExactArgs(2),
		RunE:  runParse,
	}

	cmd.Flags().Int("precision", localize.DefaultPrecision, "decimal places for numeric output")
	cmd.Flags().Bool("thousands", true, "strip thousands separators from numeric input")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	typ, err := localize.ParseFieldType(args[0])
	if err != nil {
		return err
	}

	lc, cfg, err := localeContext(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	value := args[1]

	switch typ {
	case localize.FieldDate, localize.FieldDateTime:
		canonical, err := localize.ParseTemporal(lc, typ, value)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, canonical)
		return nil

	case localize.FieldNumeric:
		precision, err := cmd.Flags().GetInt("precision")
		if err != nil {
			return err
		}
		thousands, err := cmd.Flags().GetBool("thousands")
		if err != nil {
			return err
		}

		result := localize.ParseNumber(lc, value, localize.NumberOptions{
			Precision: localize.Precision(precision),
			Thousands: thousands,
		})
		if !result.Converted {
			cfg.Logger.Debug("value passed through", zap.String("value", value), zap.String("locale", lc.Locale()))
		}
		fmt.Fprintln(out, result.Output())
		return nil

	default:
		return fmt.Errorf("cannot parse %s values", typ)
	}
}
