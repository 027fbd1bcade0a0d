package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/gopatterns/internal/auth/chain"
	"github.com/dshills/gopatterns/internal/auth/userstore"
	"github.com/dshills/gopatterns/internal/config"
	"github.com/dshills/gopatterns/internal/logging"
)

var requiredRole string

var loginCmd = &cobra.Command{
	Use:   "login [username] [password]",
	Short: "Run the chain-of-responsibility login pipeline",
	Long: `Validate credentials through the three-stage chain: existence,
credentials, authorization. With a username and password the result is
printed and the exit code reflects it. With no arguments an interactive
loop reads "username password" lines from stdin; combined with
auth.watch_users the user file reloads live between attempts.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expects no arguments or exactly <username> <password>")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		store := userstore.Demo()
		if cfg.Auth.UsersFile != "" {
			store = userstore.New()
			if err := store.LoadFile(cfg.Auth.UsersFile); err != nil {
				return err
			}
		}

		role := cfg.Auth.RequiredRole
		if cmd.Flags().Changed("role") {
			role = requiredRole
		}

		head := chain.Build(store, role, logger)

		if len(args) == 2 {
			res := head.Handle(chain.NewRequest(args[0], args[1]))
			printResult(args[0], res)
			if !res.Allowed {
				return fmt.Errorf("access denied")
			}
			return nil
		}

		return loginLoop(head, store, cfg.Auth, logger)
	},
}

// loginLoop reads "username password" lines from stdin until EOF, keeping
// the user file hot-reloaded when watching is configured.
func loginLoop(head chain.Handler, store *userstore.Store, cfg config.AuthConfig, logger *logging.Logger) error {
	if cfg.WatchUsers && cfg.UsersFile != "" {
		w, err := userstore.NewWatcher(store, cfg.UsersFile, logger)
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Close()
	}

	fmt.Println("enter: <username> <password> (Ctrl-D to quit)")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			fmt.Println("expected: <username> <password>")
			continue
		}
		res := head.Handle(chain.NewRequest(fields[0], fields[1]))
		printResult(fields[0], res)
	}
	return scanner.Err()
}

func printResult(username string, res chain.Result) {
	if res.Allowed {
		fmt.Printf("%s: access granted (decided at %s stage)\n", username, res.Stage)
		return
	}
	fmt.Printf("%s: access denied at %s stage: %s\n", username, res.Stage, res.Reason)
}

func init() {
	loginCmd.Flags().StringVar(&requiredRole, "role", "", "required role (overrides config)")
	rootCmd.AddCommand(loginCmd)
}
