package commands

import (
	"fmt"
	"strconv"

	"currency-mask/internal/session"

	"github.com/spf13/cobra"
)

func formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <value>",
		Short: "Format a numeric value as display text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fail(fmt.Errorf("invalid value %q: %v", args[0], err))
			}

			fopts, vopts, mode, err := buildOptions()
			if err != nil {
				return fail(err)
			}

			sess, err := session.New(&value, fopts, vopts, mode)
			if err != nil {
				return fail(err)
			}

			state := sess.State()
			fmt.Println(state.Text)
			if state.Err != "" {
				fmt.Println("warning:", state.Err)
			}
			return nil
		},
	}
}
