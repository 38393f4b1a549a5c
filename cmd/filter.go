package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-calendar/internal/model"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Show or change which entries are displayed",
	Args:  cobra.NoArgs,
	RunE:  runFilter,
}

var filterToggleCmd = &cobra.Command{
	Use:       "toggle <tasks|meetings|events|outlook|gmail>",
	Short:     "Flip one display filter",
	Args:      cobra.ExactArgs(1),
	ValidArgs: flagNames(),
	RunE:      runFilterToggle,
}

var filterSetCmd = &cobra.Command{
	Use:   "set <flag> <on|off>",
	Short: "Turn one display filter on or off",
	Args:  cobra.ExactArgs(2),
	RunE:  runFilterSet,
}

func init() {
	filterCmd.AddCommand(filterToggleCmd)
	filterCmd.AddCommand(filterSetCmd)
}

func flagNames() []string {
	names := make([]string, 0, len(model.Flags))
	for _, f := range model.Flags {
		names = append(names, string(f))
	}
	return names
}

func runFilter(cmd *cobra.Command, args []string) error {
	a := openApp()
	defer a.Close()
	printFilters(cmd.OutOrStdout(), a.filters.State())
	return nil
}

func runFilterToggle(cmd *cobra.Command, args []string) error {
	return changeFilter(cmd, args[0], nil)
}

func runFilterSet(cmd *cobra.Command, args []string) error {
	on, err := parseOnOff(args[1])
	if err != nil {
		exitUser(err)
	}
	return changeFilter(cmd, args[0], &on)
}

// changeFilter flips flag, or sets it when on is given, and prints the
// resulting state from the change notification.
func changeFilter(cmd *cobra.Command, name string, on *bool) error {
	flag, err := model.ParseFlag(name)
	if err != nil {
		exitUser(err)
	}

	a := openApp()
	defer a.Close()

	unsubscribe := a.filters.Subscribe(func(s model.FilterState) {
		printFilters(cmd.OutOrStdout(), s)
	})
	defer unsubscribe()

	if on == nil {
		err = a.filters.Toggle(flag)
	} else {
		err = a.filters.SetFlag(flag, *on)
	}
	if err != nil {
		exitStorage(err)
	}
	return nil
}

func printFilters(w io.Writer, s model.FilterState) {
	for _, f := range model.Flags {
		mark := "off"
		if s.Enabled(f) {
			mark = "on"
		}
		fmt.Fprintf(w, "%-10s%s\n", f, mark)
	}
}
