package cli

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core"
	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/session"
)

var readPasswordFunc = term.ReadPassword // mockable

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}

func (a *App) newLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login TEACHER_ID",
		Short: "Authenticate and persist the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pwd, err := promptPassword("Password: ")
			if err != nil {
				return err
			}
			tchr, err := a.Session.Login(cmd.Context(), args[0], pwd)
			if err != nil {
				return printableErr(err)
			}
			cmd.Printf("logged in as %s (%s)\n", tchr.Name, tchr.TeacherID)
			return nil
		},
	}
}

func (a *App) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and clear cached data",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.Session.Logout()
			a.State.Reset()
			cmd.Println("logged out")
			return nil
		},
	}
}

func (a *App) newRegisterCommand() *cobra.Command {
	var nt session.NewTeacher
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a teacher account",
		RunE: func(cmd *cobra.Command, args []string) error {
			pwd, err := promptPassword("Password: ")
			if err != nil {
				return err
			}
			nt.Password = pwd
			if err := a.Session.Register(cmd.Context(), nt); err != nil {
				return printableErr(err)
			}
			cmd.Println("registered; log in with `attnctl login`")
			return nil
		},
	}
	cmd.Flags().StringVar(&nt.Name, "name", "", "full name")
	cmd.Flags().StringVar(&nt.TeacherID, "teacher-id", "", "teacher id")
	cmd.Flags().StringVar(&nt.Department, "department", "", "department")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("teacher-id")
	_ = cmd.MarkFlagRequired("department")
	return cmd
}

func (a *App) newWhoamiCommand() *cobra.Command {
	var refresh bool
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated teacher",
		Annotations: map[string]string{
			viewAnnotation: session.DashboardView,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tchr, ok := a.Session.Current()
			if refresh {
				var err error
				if tchr, err = a.Session.RefreshProfile(cmd.Context()); err != nil {
					return printableErr(err)
				}
				ok = true
			}
			if !ok {
				return fmt.Errorf("not logged in")
			}
			cmd.Printf("%s (%s), %s\n", tchr.Name, tchr.TeacherID, tchr.Department)
			return nil
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-fetch the profile from the server")
	return cmd
}

// printableErr flattens a validation error into per-field lines so the user
// sees what to fix before anything is sent.
func printableErr(err error) error {
	var vErr *core.ValidationError
	if errors.As(err, &vErr) && len(vErr.Fields) > 0 {
		msg := vErr.Error()
		for _, fld := range vErr.Fields {
			msg += fmt.Sprintf("\n  %s: %s", fld.Field, fld.Error)
		}
		return fmt.Errorf("%s", msg)
	}
	return err
}
