package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/internquest/internquest/internal/app"
	"github.com/internquest/internquest/internal/auth"
	"github.com/internquest/internquest/internal/config"
	"github.com/internquest/internquest/internal/guard"
	"github.com/internquest/internquest/internal/lookup"
	"github.com/internquest/internquest/internal/profile"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your account",
	Example: `  internquest login --email juan@school.edu
  internquest login --student-id 21-00457`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		reader := bufio.NewReader(os.Stdin)

		email, _ := cmd.Flags().GetString("email")
		studentID, _ := cmd.Flags().GetString("student-id")

		// Students usually know their ID, not the email the school
		// registered. Resolve it through the lookup endpoint, which retries
		// once with the de-hyphenated form.
		if email == "" && studentID != "" {
			resolved, err := a.Lookup.EmailForStudentID(cmd.Context(), studentID)
			if errors.Is(err, lookup.ErrAccountNotFound) {
				fmt.Println("No account found for that student ID. Contact your coordinator.")
				return nil
			}
			if errors.Is(err, lookup.ErrForbidden) {
				fmt.Println("Lookup not allowed. Contact your administrator.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("error looking up account: %w", err)
			}
			email = resolved
		}

		if email == "" {
			email = prompt(reader, "Email")
		}
		if email == "" {
			fmt.Println("Email is required")
			return nil
		}

		password := prompt(reader, "Password")
		if password == "" {
			fmt.Println("Password is required")
			return nil
		}

		session, err := a.Auth.SignIn(cmd.Context(), email, password)
		if err != nil {
			fmt.Println(auth.UserMessage(err))
			return nil
		}

		// Remember who signed in; secondary write, a failure here doesn't
		// undo the sign-in.
		if err := config.Set("student_id", session.UserID); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save student id: %v\n", err)
		}

		fmt.Printf("✓ Signed in as %s\n", session.Email)

		svc := profile.NewService(a.Gateway)
		p, err := svc.Get(cmd.Context(), session.UserID)
		if err == nil && p.MustChangePassword {
			fmt.Println(warnStyle.Render("Your account requires a password change before you can continue."))
			fmt.Println("Run 'internquest passwd' now.")
		}
		return nil
	},
}

var forgotCmd = &cobra.Command{
	Use:   "forgot <email>",
	Short: "Send a password reset email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())

		if err := a.Auth.SendPasswordReset(cmd.Context(), args[0]); err != nil {
			fmt.Println(auth.UserMessage(err))
			return nil
		}

		fmt.Printf("✓ Password reset email sent to %s\n", args[0])
		return nil
	},
}

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change your password",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())

		session, err := a.Auth.CurrentUser(cmd.Context())
		if err != nil {
			return app.ErrNotSignedIn
		}

		svc := profile.NewService(a.Gateway)
		p, err := svc.Get(cmd.Context(), session.UserID)
		if err != nil {
			return fmt.Errorf("error fetching profile: %w", err)
		}

		g := guard.New(p.MustChangePassword,
			"You must change your password before leaving this screen.")

		reader := bufio.NewReader(os.Stdin)
		for {
			fmt.Println(titleStyle.Render("Change Password"))
			current := prompt(reader, "Current password (blank to cancel)")

			if current == "" {
				if allowed, message := g.AttemptLeave(); !allowed {
					if message != "" {
						fmt.Println(warnStyle.Render(message))
					}
					g.DismissPrompt()
					continue
				}
				fmt.Println("Cancelled")
				return nil
			}

			newPassword := prompt(reader, "New password")
			confirm := prompt(reader, "Confirm new password")
			if newPassword != confirm {
				fmt.Println("Passwords do not match. Try again.")
				continue
			}
			if len(newPassword) < 8 {
				fmt.Println("Password must be at least 8 characters.")
				continue
			}

			err := auth.ChangePassword(cmd.Context(), a.Auth, a.Gateway, g, session.UserID, current, newPassword)
			if err != nil {
				fmt.Println(auth.UserMessage(err))
				continue
			}

			fmt.Println("✓ Password changed")
			return nil
		}
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.GetAppFromContext(cmd.Context())
		if err := a.Auth.SignOut(cmd.Context()); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("error signing out: %w", err)
		}
		fmt.Println("✓ Signed out")
		return nil
	},
}

var acknowledgeCmd = &cobra.Command{
	Use:   "acknowledge",
	Short: "Acknowledge the internship policy",
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
		if p.PolicyAcknowledged {
			fmt.Println("Policy already acknowledged.")
			return nil
		}

		g := guard.New(true, "You must acknowledge the policy before continuing.")

		reader := bufio.NewReader(os.Stdin)
		for {
			answer := strings.ToLower(prompt(reader, "I have read and accept the internship policy (yes/no)"))
			if answer == "yes" || answer == "y" {
				if err := auth.AcknowledgePolicy(cmd.Context(), a.Gateway, g, studentID); err != nil {
					return err
				}
				fmt.Println("✓ Policy acknowledged")
				return nil
			}

			allowed, message := g.AttemptLeave()
			if allowed {
				fmt.Println("Cancelled")
				return nil
			}
			if message != "" {
				fmt.Println(warnStyle.Render(message))
			}
			g.DismissPrompt()
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(passwdCmd)
	rootCmd.AddCommand(acknowledgeCmd)
	loginCmd.AddCommand(forgotCmd)

	loginCmd.Flags().String("email", "", "Account email")
	loginCmd.Flags().String("student-id", "", "Student ID to look up the account email")
}
