package commands

import (
	"fmt"
	"os"

	"currency-mask/internal/mask"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	currencyCode     string
	locale           string
	fractionDigits   int
	minFraction      int
	maxFraction      int
	allowNegative    bool
	maxIntegerDigits int
	minimum          float64
	maximum          float64
	modeName         string

	flagsSet map[string]bool
)

func Execute() error {
	root := &cobra.Command{
		Use:   "maskfield",
		Short: "Locale-aware currency input masking",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			flagsSet = map[string]bool{}
			cmd.Root().PersistentFlags().Visit(func(f *pflag.Flag) {
				flagsSet[f.Name] = true
			})
		},
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&currencyCode, "currency", "c", "USD", "ISO 4217 currency code")
	pf.StringVarP(&locale, "locale", "l", "en-US", "BCP-47 locale tag")
	pf.IntVar(&fractionDigits, "fraction-digits", 2, "fraction digits (legacy single setting)")
	pf.IntVar(&minFraction, "min-fraction", -1, "minimum fraction digits (-1: use fraction-digits)")
	pf.IntVar(&maxFraction, "max-fraction", -1, "maximum fraction digits (-1: use fraction-digits)")
	pf.BoolVarP(&allowNegative, "negative", "n", false, "allow negative values")
	pf.IntVar(&maxIntegerDigits, "max-digits", 0, "maximum integer digits (0: unlimited)")
	pf.Float64Var(&minimum, "min", 0, "minimum value (with --min-set)")
	pf.Float64Var(&maximum, "max", 0, "maximum value (with --max-set)")
	pf.StringVarP(&modeName, "mode", "m", "currency", "display mode: currency or raw")

	root.AddCommand(demoCmd(), formatCmd(), parseCmd())
	return root.Execute()
}

// buildOptions converts the flag set into engine options.
func buildOptions() (mask.FormatOptions, mask.ValidateOptions, mask.Mode, error) {
	fopts := mask.FormatOptions{
		Currency:             currencyCode,
		Locale:               locale,
		LegacyFractionDigits: &fractionDigits,
	}
	if minFraction >= 0 {
		fopts.MinFractionDigits = &minFraction
	}
	if maxFraction >= 0 {
		fopts.MaxFractionDigits = &maxFraction
	}

	vopts := mask.ValidateOptions{AllowNegative: allowNegative}
	if maxIntegerDigits > 0 {
		vopts.MaxIntegerDigits = &maxIntegerDigits
	}
	if flagsSet["min"] {
		vopts.Minimum = &minimum
	}
	if flagsSet["max"] {
		vopts.Maximum = &maximum
	}

	mode, err := mask.ParseMode(modeName)
	if err != nil {
		return fopts, vopts, mode, err
	}
	return fopts, vopts, mode, nil
}

func fail(err error) error {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return err
}
