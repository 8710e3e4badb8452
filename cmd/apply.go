package cmd

import (
	"errors"
	"fmt"

	"github.com/internquest/internquest/internal/app"
	"github.com/internquest/internquest/internal/application"
	"github.com/internquest/internquest/pkg/models"
	"github.com/spf13/cobra"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Browse partner companies",
}

var listCompaniesCmd = &cobra.Command{
	Use:   "list",
	Short: "List partner companies",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		studentID, err := a.StudentID(cmd.Context())
		if err != nil {
			return err
		}

		svc := application.NewService(a.Gateway)
		companies, err := svc.Companies(cmd.Context())
		if err != nil {
			return fmt.Errorf("error fetching companies: %w", err)
		}

		if len(companies) == 0 {
			fmt.Println("No companies yet. Register one with 'internquest company add'")
			return nil
		}

		fmt.Println(titleStyle.Render("Partner Companies"))
		for _, c := range companies {
			status, err := svc.StatusFor(cmd.Context(), studentID, c.ID)
			if err != nil {
				return fmt.Errorf("error fetching application status: %w", err)
			}

			fmt.Printf("• %s", c.Name)
			if c.Location != "" {
				fmt.Printf(" — %s", c.Location)
			}
			fmt.Println()
			fmt.Printf("  %s %s | %s %s\n", labelStyle.Render("ID:"), c.ID, labelStyle.Render("Status:"), applicationLabel(status))
		}
		return nil
	},
}

var addCompanyCmd = &cobra.Command{
	Use:     "add",
	Short:   "Register a partner company",
	Example: `  internquest company add --name "Acme Software" --location "Makati" --field "Web Development"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())

		name, _ := cmd.Flags().GetString("name")
		location, _ := cmd.Flags().GetString("location")
		field, _ := cmd.Flags().GetString("field")

		if name == "" {
			fmt.Println("Company name is required. Use --name")
			return nil
		}

		svc := application.NewService(a.Gateway)
		id, err := svc.AddCompany(cmd.Context(), models.Company{Name: name, Location: location, Field: field})
		if err != nil {
			return fmt.Errorf("error adding company: %w", err)
		}

		fmt.Printf("✓ Added company: %s (ID: %s)\n", name, id)
		return nil
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply <company-id>",
	Short: "Submit an application to a company",
	Args:  cobra.ExactArgs(1),
	Example: `  internquest apply 7f9b2c
  internquest apply 7f9b2c --notes "Referred by Prof. Santos"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		studentID, err := a.StudentID(cmd.Context())
		if err != nil {
			return err
		}

		notes, _ := cmd.Flags().GetString("notes")

		svc := application.NewService(a.Gateway)
		company, err := svc.Company(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("company not found: %s", args[0])
		}

		appRecord, err := svc.Submit(cmd.Context(), studentID, *company, notes)
		if errors.Is(err, application.ErrAlreadyApplied) {
			fmt.Println(err.Error())
			fmt.Println("Approval or rejection is decided by the coordinator — check back with 'internquest status'")
			return nil
		}
		if err != nil {
			return fmt.Errorf("error submitting application: %w", err)
		}

		fmt.Printf("✓ Application submitted to %s\n", company.Name)
		fmt.Printf("  Status: %s\n", applicationLabel(appRecord.Status))
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "View your application statuses",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		studentID, err := a.StudentID(cmd.Context())
		if err != nil {
			return err
		}

		svc := application.NewService(a.Gateway)
		apps, err := svc.List(cmd.Context(), studentID)
		if err != nil {
			return fmt.Errorf("error fetching applications: %w", err)
		}

		if len(apps) == 0 {
			fmt.Println("No applications yet. Apply with 'internquest apply <company-id>'")
			return nil
		}

		fmt.Println(titleStyle.Render("Your Applications"))

		// Group by status
		order := []models.ApplicationStatus{models.AppPending, models.AppApproved, models.AppRejected}
		groups := map[models.ApplicationStatus][]*models.Application{}
		for _, appRecord := range apps {
			groups[appRecord.Status] = append(groups[appRecord.Status], appRecord)
		}

		for _, status := range order {
			grouped := groups[status]
			if len(grouped) == 0 {
				continue
			}

			fmt.Printf("\n%s (%d)\n", labelStyle.Render(applicationLabel(status)), len(grouped))
			for _, appRecord := range grouped {
				fmt.Printf("  • %s\n", appRecord.Company)
				if appRecord.AppliedAt != nil {
					fmt.Printf("    Applied: %s\n", appRecord.AppliedAt.Format("Jan 2, 2006"))
				}
				if appRecord.Notes != "" {
					fmt.Printf("    %s %s\n", labelStyle.Render("Notes:"), appRecord.Notes)
				}
			}
		}

		fmt.Printf("\n%s %d\n", labelStyle.Render("Total Applications:"), len(apps))
		return nil
	},
}

func applicationLabel(status models.ApplicationStatus) string {
	labels := map[models.ApplicationStatus]string{
		models.AppNotApplied: "— Not Applied",
		models.AppPending:    "📝 Pending",
		models.AppApproved:   "🎉 Approved",
		models.AppRejected:   "❌ Rejected",
	}
	if label, ok := labels[status]; ok {
		return label
	}
	return string(status)
}

func init() {
	rootCmd.AddCommand(companyCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(statusCmd)

	companyCmd.AddCommand(listCompaniesCmd)
	companyCmd.AddCommand(addCompanyCmd)

	addCompanyCmd.Flags().String("name", "", "Company name (required)")
	addCompanyCmd.Flags().String("location", "", "Company location")
	addCompanyCmd.Flags().String("field", "", "Internship field")

	applyCmd.Flags().String("notes", "", "Add notes to the application")
}
