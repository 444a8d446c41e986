package commands

import (
	"fmt"

	"currency-mask/internal/session"

	"github.com/spf13/cobra"
)

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse entered text into a value and digit string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fopts, vopts, mode, err := buildOptions()
			if err != nil {
				return fail(err)
			}

			sess, err := session.New(nil, fopts, vopts, mode)
			if err != nil {
				return fail(err)
			}

			state := sess.SetText(args[0])
			if state.Value != nil {
				fmt.Println("value: ", *state.Value)
			} else {
				fmt.Println("value:  <empty>")
			}
			fmt.Println("text:  ", state.Text)
			fmt.Println("digits:", state.Digits)
			if state.Err != "" {
				fmt.Println("error: ", state.Err)
			}
			return nil
		},
	}
}
