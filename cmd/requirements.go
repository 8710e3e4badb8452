package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/internquest/internquest/internal/app"
	"github.com/internquest/internquest/internal/checklist"
	"github.com/internquest/internquest/internal/progress"
	"github.com/internquest/internquest/pkg/models"
	"github.com/spf13/cobra"
)

var requirementsCmd = &cobra.Command{
	Use:     "requirements",
	Aliases: []string{"req"},
	Short:   "Manage your requirement checklist",
	Long:    "View checklist requirements, upload documents, and track completion",
}

var listRequirementsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all requirements with their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		studentID, err := a.StudentID(cmd.Context())
		if err != nil {
			return err
		}

		svc := checklist.NewService(a.Gateway)
		items, err := svc.Load(cmd.Context(), studentID)
		if err != nil {
			return fmt.Errorf("error loading requirements: %w", err)
		}

		fmt.Println(titleStyle.Render("Requirement Checklist"))

		// Group by category
		categories := []models.RequirementCategory{
			models.CategoryDocuments,
			models.CategoryForms,
			models.CategoryCertifications,
			models.CategoryOther,
		}
		for _, cat := range categories {
			shown := false
			for _, r := range items {
				if r.Category != cat {
					continue
				}
				if !shown {
					fmt.Printf("\n%s\n", labelStyle.Render(strings.ToUpper(string(cat))))
					shown = true
				}
				fmt.Printf("  %s %s", statusLabel(r.Status), r.Title)
				if !r.IsRequired {
					fmt.Print(" (optional)")
				}
				fmt.Println()
				if r.DueDate != nil {
					fmt.Printf("      Due: %s\n", r.DueDate.Format("Jan 2, 2006"))
				}
				if len(r.UploadedFiles) > 0 {
					fmt.Printf("      Files: %d uploaded\n", len(r.UploadedFiles))
				}
			}
		}

		ratio := progress.Completion(items)
		fmt.Printf("\n%s %s %.0f%%\n", labelStyle.Render("Completion:"), progressBar(ratio, 20), ratio*100)
		return nil
	},
}

var showRequirementCmd = &cobra.Command{
	Use:   "show <requirement-id>",
	Short: "Show one requirement in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		studentID, err := a.StudentID(cmd.Context())
		if err != nil {
			return err
		}

		svc := checklist.NewService(a.Gateway)
		r, err := svc.Get(cmd.Context(), studentID, args[0])
		if err != nil {
			return fmt.Errorf("requirement not found: %s", args[0])
		}

		fmt.Println(titleStyle.Render(r.Title))
		fmt.Printf("%s %s\n", labelStyle.Render("Status:"), statusLabel(r.Status))
		fmt.Printf("%s %s\n", labelStyle.Render("Category:"), r.Category)
		if r.Description != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Description:"), valueStyle.Render(r.Description))
		}
		if r.DueDate != nil {
			fmt.Printf("%s %s\n", labelStyle.Render("Due:"), r.DueDate.Format("Jan 2, 2006"))
		}
		if r.Notes != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Notes:"), valueStyle.Render(r.Notes))
		}

		if len(r.UploadedFiles) > 0 {
			fmt.Println(labelStyle.Render("\nUploaded Files:"))
			for _, f := range r.UploadedFiles {
				fmt.Printf("  • %s", f.Name)
				switch f.Kind {
				case models.FileKindBlob:
					fmt.Printf(" (%s)", f.URL)
				case models.FileKindInline:
					fmt.Print(" (inline)")
				case models.FileKindLegacy:
					// old records carry only the name
				}
				if !f.UploadedAt.IsZero() {
					fmt.Printf(" — %s", f.UploadedAt.Format("Jan 2, 2006"))
				}
				fmt.Println()
			}
		}
		return nil
	},
}

var attachCmd = &cobra.Command{
	Use:   "attach <requirement-id> <file-path>",
	Short: "Upload a file for a requirement",
	Args:  cobra.ExactArgs(2),
	Example: `  internquest requirements attach resume ./resume.pdf
  internquest requirements attach medical-certificate ./medcert.jpg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		studentID, err := a.StudentID(cmd.Context())
		if err != nil {
			return err
		}

		filePath := args[1]
		data, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}

		svc := checklist.NewService(a.Gateway)
		r, err := svc.AttachFile(cmd.Context(), studentID, args[0], filepath.Base(filePath), data, contentTypeFor(filePath))
		if err != nil {
			return fmt.Errorf("error uploading file: %w", err)
		}

		fmt.Printf("✓ Uploaded %s to %q\n", filepath.Base(filePath), r.Title)
		fmt.Printf("  Status: %s\n", statusLabel(r.Status))
		return nil
	},
}

var detachCmd = &cobra.Command{
	Use:   "detach <requirement-id> <file-name>",
	Short: "Remove an uploaded file from a requirement",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		studentID, err := a.StudentID(cmd.Context())
		if err != nil {
			return err
		}

		svc := checklist.NewService(a.Gateway)
		r, err := svc.RemoveFile(cmd.Context(), studentID, args[0], args[1])
		if err != nil {
			return fmt.Errorf("error removing file: %w", err)
		}

		fmt.Printf("✓ Removed %s from %q\n", args[1], r.Title)
		fmt.Printf("  Status: %s\n", statusLabel(r.Status))
		return nil
	},
}

var noteCmd = &cobra.Command{
	Use:   "note <requirement-id> <text>",
	Short: "Set notes on a requirement",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		studentID, err := a.StudentID(cmd.Context())
		if err != nil {
			return err
		}

		svc := checklist.NewService(a.Gateway)
		if err := svc.SetNotes(cmd.Context(), studentID, args[0], strings.Join(args[1:], " ")); err != nil {
			return fmt.Errorf("error setting notes: %w", err)
		}

		fmt.Println("✓ Notes updated")
		return nil
	},
}

var dueCmd = &cobra.Command{
	Use:   "due <requirement-id> <date>",
	Short: "Set a requirement's due date (YYYY-MM-DD, or 'none' to clear)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		studentID, err := a.StudentID(cmd.Context())
		if err != nil {
			return err
		}

		svc := checklist.NewService(a.Gateway)
		if args[1] == "none" {
			if err := svc.SetDueDate(cmd.Context(), studentID, args[0], nil); err != nil {
				return fmt.Errorf("error clearing due date: %w", err)
			}
			fmt.Println("✓ Due date cleared")
			return nil
		}

		due := checklist.ParseDueDate(args[1])
		if due == nil {
			fmt.Println("Invalid date format. Use YYYY-MM-DD")
			return nil
		}
		if err := svc.SetDueDate(cmd.Context(), studentID, args[0], due); err != nil {
			return fmt.Errorf("error setting due date: %w", err)
		}

		fmt.Printf("✓ Due date set to %s\n", due.Format("Jan 2, 2006"))
		return nil
	},
}

func statusLabel(status models.RequirementStatus) string {
	labels := map[models.RequirementStatus]string{
		models.StatusPending:   "📝 Pending",
		models.StatusCompleted: "✅ Completed",
		models.StatusOverdue:   "⚠️ Overdue",
	}
	if label, ok := labels[status]; ok {
		return label
	}
	return string(status)
}

func progressBar(ratio float64, width int) string {
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func contentTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}

func init() {
	rootCmd.AddCommand(requirementsCmd)
	requirementsCmd.AddCommand(listRequirementsCmd)
	requirementsCmd.AddCommand(showRequirementCmd)
	requirementsCmd.AddCommand(attachCmd)
	requirementsCmd.AddCommand(detachCmd)
	requirementsCmd.AddCommand(noteCmd)
	requirementsCmd.AddCommand(dueCmd)
}
