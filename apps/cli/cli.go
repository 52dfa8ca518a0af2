// Package cli is the terminal view layer. It only reads public state and
// invokes the core's actions; every invariant lives below it.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/api"
	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core"
	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/session"
	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/state"
)

// viewAnnotation names the view a command renders; the route guard keys off it.
const viewAnnotation = "view"

type App struct {
	Conf    *core.Config
	Log     core.Logger
	Gateway *api.Client
	Session *session.Service
	State   *state.Store
}

func NewApp(conf *core.Config, log core.Logger, gw *api.Client, sess *session.Service, st *state.Store) *App {
	return &App{Conf: conf, Log: log, Gateway: gw, Session: sess, State: st}
}

func (a *App) Execute(args []string) error {
	root := a.newRootCommand()
	root.SetArgs(args)
	return root.Execute()
}

func (a *App) newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "attnctl",
		Short:         "Classroom attendance and attentiveness administration",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.guard(cmd)
		},
	}

	cmd.AddCommand(a.newLoginCommand())
	cmd.AddCommand(a.newLogoutCommand())
	cmd.AddCommand(a.newRegisterCommand())
	cmd.AddCommand(a.newWhoamiCommand())
	cmd.AddCommand(a.newClassesCommand())
	cmd.AddCommand(a.newStudentsCommand())
	cmd.AddCommand(a.newAttendanceCommand())
	cmd.AddCommand(a.newReportCommand())
	cmd.AddCommand(a.newLiveCommand())
	cmd.AddCommand(a.newHealthCommand())
	return cmd
}

// guard consults the route guard on every navigation. Commands carrying a
// view annotation (directly or through a parent) are protected; they bounce to
// login when no valid session exists. Unannotated commands (login, register,
// health, help) are public.
func (a *App) guard(cmd *cobra.Command) error {
	var view string
	for c := cmd; c != nil; c = c.Parent() {
		if v := c.Annotations[viewAnnotation]; v != "" {
			view = v
			break
		}
	}
	if view == "" {
		return nil
	}
	if session.Resolve(view, a.Session.Authenticated()) == session.LoginView {
		return fmt.Errorf("not logged in: run `attnctl login` first")
	}
	return nil
}

func (a *App) newHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the server is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Gateway.Health(cmd.Context()); err != nil {
				return err
			}
			cmd.Println("server is healthy")
			return nil
		},
	}
}
