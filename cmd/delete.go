package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an entry",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	a := openApp()
	defer a.Close()

	id := args[0]
	e, ok := a.store.Get(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "No entry with id %q.\n", id)
		os.Exit(1)
	}
	if err := a.store.Remove(id); err != nil {
		exitStorage(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %q [%s]\n", e.Category(), e.Title, id)
	return nil
}
