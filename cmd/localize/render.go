package main

import (
	"fmt"

	"github.com/goliatone/go-localize"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "render <date|datetime|literal|currency|number> <value>",
		Short:     "Render a canonical value for the locale",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"date", "datetime", "literal", "currency", "number"},
		RunE:      runRender,
	}

	cmd.Flags().Bool("no-seconds", false, "omit seconds from datetime output")
	cmd.Flags().Bool("with-time", false, "include the time in literal output")
	cmd.Flags().String("format", "", "strftime pattern overriding the locale literal format")
	cmd.Flags().Int("precision", localize.DefaultPrecision, "decimal places for number output")
	cmd.Flags().Bool("thousands", false, "group thousands in number output")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	lc, _, err := localeContext(cmd)
	if err != nil {
		return err
	}

	kind, value := args[0], args[1]
	flags := cmd.Flags()

	var rendered string
	switch kind {
	case "date":
		rendered, err = localize.RenderDate(lc, value)
	case "datetime":
		noSeconds, ferr := flags.GetBool("no-seconds")
		if ferr != nil {
			return ferr
		}
		rendered, err = localize.RenderDateTime(lc, value, !noSeconds)
	case "literal":
		withTime, ferr := flags.GetBool("with-time")
		if ferr != nil {
			return ferr
		}
		format, ferr := flags.GetString("format")
		if ferr != nil {
			return ferr
		}
		rendered, err = localize.RenderLiteral(lc, value, localize.LiteralOptions{WithTime: withTime, Format: format})
	case "currency":
		rendered = localize.RenderCurrency(lc, value)
	case "number":
		precision, ferr := flags.GetInt("precision")
		if ferr != nil {
			return ferr
		}
		thousands, ferr := flags.GetBool("thousands")
		if ferr != nil {
			return ferr
		}
		rendered = localize.RenderNumber(lc, value, localize.Precision(precision), thousands)
	default:
		return fmt.Errorf("unknown render kind %q", kind)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}
