package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/gopatterns/internal/editor/buffer"
	"github.com/dshills/gopatterns/internal/editor/history"
	"github.com/dshills/gopatterns/internal/script"
)

var scriptCmd = &cobra.Command{
	Use:   "script <file.lua>",
	Short: "Drive the editor core from a Lua script",
	Long: `Run a Lua script against a fresh buffer and history. Scripts call
type(text), delete(n), undo(), content() and history(). The final buffer
content and remaining undo entries are printed when the script completes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		buf := buffer.New()
		hist := history.New(
			history.WithMaxEntries(cfg.Editor.MaxHistory),
			history.WithLogger(logger),
		)

		session := script.NewSession(buf, hist, logger)
		defer session.Close()

		if err := session.RunFile(args[0]); err != nil {
			return fmt.Errorf("running %s: %w", args[0], err)
		}

		fmt.Printf("content: %q\n", buf.String())
		for i, desc := range hist.Entries() {
			fmt.Printf("  %2d  %s\n", i+1, desc)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)
}
