package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dshills/gopatterns/internal/editor/buffer"
	"github.com/dshills/gopatterns/internal/editor/history"
	"github.com/dshills/gopatterns/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Run the interactive editor demo",
	Long: `Run the terminal editor demo. Every keystroke executes a command
against the buffer; Ctrl-Z undoes the most recent one. Ctrl-Q quits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}

		buf := buffer.New()
		// The terminal is owned by tcell while editing, so command
		// tracing stays off here.
		hist := history.New(history.WithMaxEntries(cfg.Editor.MaxHistory))

		editor, err := tui.New(buf, hist, nil)
		if err != nil {
			return err
		}
		return editor.Run()
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
