package cmd

import (
	"fmt"

	"github.com/internquest/internquest/internal/app"
	"github.com/internquest/internquest/internal/profile"
	"github.com/spf13/cobra"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage your skills",
	Long:  "Add, list, and remove skills from your profile",
}

var addSkillCmd = &cobra.Command{
	Use:   "add <skill-name>",
	Short: "Add a skill",
	Args:  cobra.ExactArgs(1),
	Example: `  internquest skill add "Go"
  internquest skill add "React"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		studentID, err := a.StudentID(cmd.Context())
		if err != nil {
			return err
		}

		svc := profile.NewService(a.Gateway)
		if err := svc.AddSkill(cmd.Context(), studentID, args[0]); err != nil {
			return fmt.Errorf("error adding skill: %w", err)
		}

		fmt.Printf("✓ Added skill: %s\n", args[0])
		return nil
	},
}

var listSkillsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		studentID, err := a.StudentID(cmd.Context())
		if err != nil {
			return err
		}

		svc := profile.NewService(a.Gateway)
		p, err := svc.Get(cmd.Context(), studentID)
		if err != nil {
			return fmt.Errorf("error fetching profile: %w", err)
		}

		if len(p.Skills) == 0 {
			fmt.Println("No skills found. Add skills with 'internquest skill add <skill-name>'")
			return nil
		}

		fmt.Println(titleStyle.Render("Your Skills"))
		for i, skill := range p.Skills {
			fmt.Printf("%d. %s\n", i+1, skill)
		}
		return nil
	},
}

var removeSkillCmd = &cobra.Command{
	Use:   "remove <skill-name>",
	Short: "Remove a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		studentID, err := a.StudentID(cmd.Context())
		if err != nil {
			return err
		}

		svc := profile.NewService(a.Gateway)
		if err := svc.RemoveSkill(cmd.Context(), studentID, args[0]); err != nil {
			return fmt.Errorf("error removing skill: %w", err)
		}

		fmt.Printf("✓ Removed skill: %s\n", args[0])
		return nil
	},
}

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Set work setup preferences",
	Example: `  internquest prefs --remote --hybrid
  internquest prefs --onsite`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		studentID, err := a.StudentID(cmd.Context())
		if err != nil {
			return err
		}

		remote, _ := cmd.Flags().GetBool("remote")
		onsite, _ := cmd.Flags().GetBool("onsite")
		hybrid, _ := cmd.Flags().GetBool("hybrid")

		if !remote && !onsite && !hybrid {
			fmt.Println("Pick at least one of --remote, --onsite, --hybrid")
			return nil
		}

		svc := profile.NewService(a.Gateway)
		p, err := svc.Get(cmd.Context(), studentID)
		if err != nil {
			return fmt.Errorf("error fetching profile: %w", err)
		}

		p.LocationPreference.Remote = remote
		p.LocationPreference.Onsite = onsite
		p.LocationPreference.Hybrid = hybrid

		if err := svc.Save(cmd.Context(), p); err != nil {
			return fmt.Errorf("error updating preferences: %w", err)
		}

		fmt.Println("✓ Work setup preferences updated!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(prefsCmd)

	skillCmd.AddCommand(addSkillCmd)
	skillCmd.AddCommand(listSkillsCmd)
	skillCmd.AddCommand(removeSkillCmd)

	prefsCmd.Flags().Bool("remote", false, "Open to remote work")
	prefsCmd.Flags().Bool("onsite", false, "Open to onsite work")
	prefsCmd.Flags().Bool("hybrid", false, "Open to hybrid work")
}
