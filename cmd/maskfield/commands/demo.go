package commands

import (
	"currency-mask/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Interactive currency field in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			fopts, vopts, mode, err := buildOptions()
			if err != nil {
				return fail(err)
			}

			model, err := tui.NewModel(fopts, vopts, mode)
			if err != nil {
				return fail(err)
			}

			_, err = tea.NewProgram(model).Run()
			if err != nil {
				return fail(err)
			}
			return nil
		},
	}
}
