package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"go-leave/internal/calendar"

	"github.com/spf13/cobra"
)

func newDaysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "days",
		Short: "Count deductible days for a date range without touching the database",
		Args:  cobra.NoArgs,
		RunE:  runDays,
	}
	cmd.Flags().String("start", "", "first day of leave (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "last day of leave (YYYY-MM-DD)")
	cmd.Flags().StringSlice("working-days", nil, "working weekdays, e.g. monday,tuesday (default monday-friday)")
	cmd.Flags().StringArray("holiday", nil, "holiday as YYYY-MM-DD or YYYY-MM-DD=Name, repeatable")
	cmd.Flags().Bool("json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func runDays(cmd *cobra.Command, _ []string) error {
	startFlag, _ := cmd.Flags().GetString("start")
	endFlag, _ := cmd.Flags().GetString("end")
	start, err := calendar.ParseDate(startFlag)
	if err != nil {
		return fmt.Errorf("invalid --start %q: %w", startFlag, err)
	}
	end, err := calendar.ParseDate(endFlag)
	if err != nil {
		return fmt.Errorf("invalid --end %q: %w", endFlag, err)
	}

	workingDays := calendar.DefaultWorkingDays()
	if names, _ := cmd.Flags().GetStringSlice("working-days"); len(names) > 0 {
		workingDays, err = calendar.ParseWorkingDays(names)
		if err != nil {
			return err
		}
	}

	raw, _ := cmd.Flags().GetStringArray("holiday")
	holidays, err := parseHolidayFlags(raw)
	if err != nil {
		return err
	}

	net, err := calendar.CountNetDays(start, end, workingDays, holidays)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(net)
	}
	fmt.Fprintf(out, "days=%d weekends_excluded=%d holidays_excluded=%d\n",
		net.Days, net.WeekendsExcluded, net.HolidaysExcluded)
	return nil
}

func parseHolidayFlags(raw []string) ([]calendar.HolidayEntry, error) {
	out := make([]calendar.HolidayEntry, 0, len(raw))
	for _, v := range raw {
		date, name, _ := strings.Cut(v, "=")
		d, err := calendar.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("invalid --holiday %q: %w", v, err)
		}
		out = append(out, calendar.HolidayEntry{Date: d, Name: strings.TrimSpace(name)})
	}
	return out, nil
}
