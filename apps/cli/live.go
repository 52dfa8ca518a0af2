package cli

import (
	"github.com/spf13/cobra"
)

const liveView = "live"

func (a *App) newLiveCommand() *cobra.Command {
	var classID string
	cmd := &cobra.Command{
		Use:   "live",
		Short: "Control live attentiveness capture",
		Annotations: map[string]string{
			viewAnnotation: liveView,
		},
	}
	cmd.PersistentFlags().StringVar(&classID, "class", "", "class id")
	_ = cmd.MarkPersistentFlagRequired("class")

	cmd.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Start a live session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ls, err := a.Gateway.StartLiveSession(cmd.Context(), classID)
			if err != nil {
				return printableErr(err)
			}
			cmd.Printf("live session %s started\n", ls.ID)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "stop SESSION_ID",
		Short: "Stop a live session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Gateway.StopLiveSession(cmd.Context(), classID, args[0]); err != nil {
				return printableErr(err)
			}
			cmd.Println("live session stopped")
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status SESSION_ID",
		Short: "Show a live session's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ls, err := a.Gateway.LiveSessionStatus(cmd.Context(), classID, args[0])
			if err != nil {
				return printableErr(err)
			}
			cmd.Printf("session %s: %s\n", ls.ID, ls.Status)
			return nil
		},
	})
	return cmd
}
