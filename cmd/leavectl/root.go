package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "leavectl",
		Short:         "Inspect leave day counts and balances",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDaysCmd(), newBalanceCmd())
	return root
}
