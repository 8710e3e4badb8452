package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/internquest/internquest/internal/app"
	"github.com/internquest/internquest/internal/matcher"
	"github.com/internquest/internquest/internal/profile"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
	Long:  "View and update the profile information used for internship applications",
}

var profileInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up your profile with an interactive wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		studentID, err := a.StudentID(cmd.Context())
		if err != nil {
			return err
		}

		svc := profile.NewService(a.Gateway)
		p, err := svc.Get(cmd.Context(), studentID)
		if err != nil {
			return fmt.Errorf("error loading profile: %w", err)
		}

		if p.IsProfileComplete() {
			fmt.Println(titleStyle.Render("Profile Already Set Up"))
			fmt.Println("Use 'internquest profile show' to view or 'internquest profile set' to update.")
			return nil
		}

		fmt.Println(titleStyle.Render("Welcome to InternQuest! Let's set up your profile."))

		reader := bufio.NewReader(os.Stdin)

		p.FirstName = prompt(reader, "First Name")
		p.LastName = prompt(reader, "Last Name")
		p.Gender = prompt(reader, "Gender")
		p.Program = resolveOption(reader, "Program", matcher.Programs)
		p.Field = resolveOption(reader, "Preferred Field", matcher.Fields)

		skills := prompt(reader, "Skills (comma-separated)")
		for _, s := range strings.Split(skills, ",") {
			if s = strings.TrimSpace(s); s != "" {
				p.Skills = append(p.Skills, s)
			}
		}

		setup := prompt(reader, "Work setup preference (remote/onsite/hybrid, comma-separated)")
		for _, s := range strings.Split(setup, ",") {
			switch strings.TrimSpace(strings.ToLower(s)) {
			case "remote":
				p.LocationPreference.Remote = true
			case "onsite":
				p.LocationPreference.Onsite = true
			case "hybrid":
				p.LocationPreference.Hybrid = true
			}
		}

		if err := svc.Save(cmd.Context(), p); err != nil {
			return fmt.Errorf("error saving profile: %w", err)
		}

		fmt.Println(titleStyle.Render("\n✓ Profile saved!"))
		if !p.IsProfileComplete() {
			fmt.Println(warnStyle.Render("Your profile is still incomplete; some fields are empty."))
		}
		fmt.Println("Next steps:")
		fmt.Println("  1. Review your requirements: internquest requirements list")
		fmt.Println("  2. Browse companies: internquest company list")
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display your profile information",
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

		fmt.Println(titleStyle.Render("Your Profile"))
		fmt.Printf("%s %s %s\n", labelStyle.Render("Name:"), valueStyle.Render(p.FirstName), valueStyle.Render(p.LastName))
		if p.Email != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Email:"), valueStyle.Render(p.Email))
		}
		if p.Gender != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Gender:"), valueStyle.Render(p.Gender))
		}
		if p.Program != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Program:"), valueStyle.Render(p.Program))
		}
		if p.Field != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Field:"), valueStyle.Render(p.Field))
		}

		if len(p.Skills) > 0 {
			fmt.Println(labelStyle.Render("\nSkills:"))
			for _, skill := range p.Skills {
				fmt.Printf("  • %s\n", skill)
			}
		}

		prefs := []string{}
		if p.LocationPreference.Remote {
			prefs = append(prefs, "remote")
		}
		if p.LocationPreference.Onsite {
			prefs = append(prefs, "onsite")
		}
		if p.LocationPreference.Hybrid {
			prefs = append(prefs, "hybrid")
		}
		if len(prefs) > 0 {
			fmt.Printf("%s %s\n", labelStyle.Render("\nWork Setup:"), valueStyle.Render(strings.Join(prefs, ", ")))
		}

		if p.OJT.IsHired {
			fmt.Println(labelStyle.Render("\nOJT Placement:"))
			fmt.Printf("  %s %s\n", labelStyle.Render("Company:"), valueStyle.Render(p.OJT.CurrentCompany))
			fmt.Printf("  %s %.1f / %.1f\n", labelStyle.Render("Hours:"), p.OJT.CompletedHours, p.OJT.RequiredHours)
		}

		if p.IsProfileComplete() {
			fmt.Printf("\n%s\n", labelStyle.Render("✓ Profile complete"))
		} else {
			fmt.Printf("\n%s\n", warnStyle.Render("Profile incomplete — run 'internquest profile init'"))
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:     "set",
	Aliases: []string{"edit"},
	Short:   "Update a profile field",
	Example: `  internquest profile set --first-name "Juan" --last-name "Dela Cruz"
  internquest profile set --program "BS Information Technology"
  internquest profile set --field "Web Development"`,
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

		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")
		gender, _ := cmd.Flags().GetString("gender")
		program, _ := cmd.Flags().GetString("program")
		field, _ := cmd.Flags().GetString("field")

		updated := false
		if firstName != "" {
			p.FirstName = firstName
			updated = true
		}
		if lastName != "" {
			p.LastName = lastName
			updated = true
		}
		if gender != "" {
			p.Gender = gender
			updated = true
		}
		if program != "" {
			p.Program = canonicalOption(program, matcher.Programs)
			updated = true
		}
		if field != "" {
			p.Field = canonicalOption(field, matcher.Fields)
			updated = true
		}

		if !updated {
			fmt.Println("No fields to update. Use flags like --first-name, --program, etc.")
			return nil
		}

		if err := svc.Save(cmd.Context(), p); err != nil {
			return fmt.Errorf("error updating profile: %w", err)
		}

		fmt.Println("✓ Profile updated successfully!")
		return nil
	},
}

// prompt reads one trimmed line with a styled label
func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(labelStyle.Render(label + ": "))
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// resolveOption prompts for a value and resolves it against the canonical
// reference list using the fuzzy matcher. The raw input is kept when it
// cannot be narrowed to a single option.
func resolveOption(reader *bufio.Reader, label string, options []string) string {
	input := prompt(reader, label)
	if input == "" {
		return ""
	}
	resolved := canonicalOption(input, options)
	if resolved != input {
		fmt.Printf("  → %s\n", valueStyle.Render(resolved))
	}
	return resolved
}

// canonicalOption maps free-text input to a canonical option when the
// fuzzy matcher narrows it to exactly one; otherwise the input is kept.
func canonicalOption(input string, options []string) string {
	matched := matcher.Filter(options, input)
	if len(matched) == 1 {
		return matched[0]
	}
	for _, opt := range matched {
		if strings.EqualFold(opt, input) {
			return opt
		}
	}
	return input
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileInitCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)

	profileSetCmd.Flags().String("first-name", "", "Update first name")
	profileSetCmd.Flags().String("last-name", "", "Update last name")
	profileSetCmd.Flags().String("gender", "", "Update gender")
	profileSetCmd.Flags().String("program", "", "Update degree program")
	profileSetCmd.Flags().String("field", "", "Update preferred field")
}
