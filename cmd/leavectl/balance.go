package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"go-leave/internal/app"
	"go-leave/internal/bootstrap"
	"go-leave/internal/config"
	"go-leave/internal/domain"
	"go-leave/internal/employee"
	"go-leave/internal/holiday"
	"go-leave/internal/leave"
	"go-leave/internal/settings"
	"go-leave/internal/shared/apperror"

	"github.com/spf13/cobra"
)

func newBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance EMPLOYEE_ID",
		Short: "Print an employee's leave balance as of today",
		Args:  cobra.ExactArgs(1),
		RunE:  runBalance,
	}
	cmd.Flags().String("org", "", "organization id")
	cmd.Flags().Bool("json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("org")
	return cmd
}

func runBalance(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger, err := bootstrap.NewLogger(cfg.IsProduction())
	if err != nil {
		return err
	}
	defer logger.Sync()
	apperror.Init()

	gormDB, err := app.ConnectDatabase(cfg, logger)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// Read-only path: no cache, no outbox.
	svc := leave.NewService(sqlDB, leave.NewRepository(gormDB), leave.Dependencies{
		Employees: employee.NewService(employee.NewRepository(gormDB), logger),
		Settings:  settings.NewService(settings.NewRepository(gormDB), nil, 0, logger),
		Holidays:  holiday.NewService(holiday.NewRepository(gormDB), logger),
	}, logger)

	org, _ := cmd.Flags().GetString("org")
	res, err := svc.GetBalance(cmd.Context(), org, leave.Actor{Role: domain.RoleAdmin}, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintf(out, "employee %s  period %s  window %s\n", res.EmployeeID, res.Period, res.Window)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tQUOTA\tUSED\tAVAILABLE")
	for _, b := range res.Balances {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.LeaveType, b.Quota, b.Used, b.Available)
	}
	return tw.Flush()
}
