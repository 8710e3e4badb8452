package cmd

import (
	"fmt"
	"time"

	"github.com/internquest/internquest/internal/app"
	"github.com/internquest/internquest/internal/checklist"
	"github.com/internquest/internquest/internal/profile"
	"github.com/internquest/internquest/internal/progress"
	"github.com/spf13/cobra"
)

var hoursCmd = &cobra.Command{
	Use:   "hours",
	Short: "Log and review OJT hours",
}

var addHoursCmd = &cobra.Command{
	Use:   "add <hours>",
	Short: "Log worked hours",
	Args:  cobra.ExactArgs(1),
	Example: `  internquest hours add 8
  internquest hours add 7.5 --date 2026-08-28 --activity "Sprint testing"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		studentID, err := a.StudentID(cmd.Context())
		if err != nil {
			return err
		}

		dateStr, _ := cmd.Flags().GetString("date")
		activity, _ := cmd.Flags().GetString("activity")

		date := time.Now()
		if dateStr != "" {
			parsed, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				fmt.Println("Invalid date format. Use YYYY-MM-DD")
				return nil
			}
			date = parsed
		}

		svc := profile.NewService(a.Gateway)
		if _, err := svc.LogHours(cmd.Context(), studentID, date, args[0], activity); err != nil {
			return fmt.Errorf("error logging hours: %w", err)
		}

		fmt.Printf("✓ Logged %s hours on %s\n", args[0], date.Format("Jan 2, 2006"))
		return nil
	},
}

var listHoursCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged hours",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		studentID, err := a.StudentID(cmd.Context())
		if err != nil {
			return err
		}

		svc := profile.NewService(a.Gateway)
		logs, err := svc.HourLogs(cmd.Context(), studentID)
		if err != nil {
			return fmt.Errorf("error fetching hour logs: %w", err)
		}

		if len(logs) == 0 {
			fmt.Println("No hours logged yet. Log with 'internquest hours add <hours>'")
			return nil
		}

		fmt.Println(titleStyle.Render("Logged Hours"))
		for _, l := range logs {
			fmt.Printf("  %s  %s hrs", l.Date.Format("Jan 2, 2006"), l.Hours)
			if l.Activity != "" {
				fmt.Printf("  — %s", l.Activity)
			}
			fmt.Println()
		}
		fmt.Printf("\n%s %.1f\n", labelStyle.Render("Total:"), progress.SumLoggedHours(logs))
		return nil
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "View checklist and OJT hour progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		studentID, err := a.StudentID(cmd.Context())
		if err != nil {
			return err
		}

		clSvc := checklist.NewService(a.Gateway)
		items, err := clSvc.Load(cmd.Context(), studentID)
		if err != nil {
			return fmt.Errorf("error loading requirements: %w", err)
		}

		pSvc := profile.NewService(a.Gateway)
		p, err := pSvc.Get(cmd.Context(), studentID)
		if err != nil {
			return fmt.Errorf("error fetching profile: %w", err)
		}
		logs, err := pSvc.HourLogs(cmd.Context(), studentID)
		if err != nil {
			return fmt.Errorf("error fetching hour logs: %w", err)
		}

		fmt.Println(titleStyle.Render("Your Progress"))

		completion := progress.Completion(items)
		fmt.Printf("%s %s %.0f%%\n", labelStyle.Render("Requirements:"), progressBar(completion, 20), completion*100)

		if p.OJT.RequiredHours > 0 {
			hourRatio := progress.Hours(logs, p.OJT.RequiredHours)
			fmt.Printf("%s %s %.0f%% (%.1f / %.1f hrs)\n",
				labelStyle.Render("OJT Hours:   "),
				progressBar(hourRatio, 20),
				hourRatio*100,
				progress.SumLoggedHours(logs),
				p.OJT.RequiredHours)
		} else {
			fmt.Println(valueStyle.Render("No required hours set yet — they appear once you are hired."))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hoursCmd)
	rootCmd.AddCommand(progressCmd)

	hoursCmd.AddCommand(addHoursCmd)
	hoursCmd.AddCommand(listHoursCmd)

	addHoursCmd.Flags().String("date", "", "Date worked (YYYY-MM-DD, default today)")
	addHoursCmd.Flags().String("activity", "", "What you worked on")
}
