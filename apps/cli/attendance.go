package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/state"
)

const attendanceView = "attendance"

func (a *App) newAttendanceCommand() *cobra.Command {
	var classID string
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Mark and review attendance",
		Annotations: map[string]string{
			viewAnnotation: attendanceView,
		},
	}
	cmd.PersistentFlags().StringVar(&classID, "class", "", "class id")
	_ = cmd.MarkPersistentFlagRequired("class")

	cmd.AddCommand(a.newAttendanceShowCommand(&classID))
	cmd.AddCommand(a.newAttendanceMarkCommand(&classID))
	return cmd
}

func (a *App) newAttendanceShowCommand(classID *string) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show attendance records",
		RunE: func(cmd *cobra.Command, args []string) error {
			token := a.State.BeginFetch(state.ResourceAttendance)
			entries, err := a.Gateway.Attendance(cmd.Context(), *classID, date)
			a.State.EndFetch(state.ResourceAttendance, token)
			if err != nil {
				return printableErr(err)
			}
			for _, e := range entries {
				mark := "absent"
				if e.Present {
					mark = "present"
				}
				cmd.Printf("%s\t%s\t%s\t%s\t%.1f\n", e.Date, e.StudentUSN, e.StudentName, mark, e.AttentivenessScore)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "only this date (YYYY-MM-DD)")
	return cmd
}

// newAttendanceMarkCommand submits a sheet for the whole class: students
// listed in --present are present, everyone else absent.
func (a *App) newAttendanceMarkCommand(classID *string) *cobra.Command {
	var date, present string
	var duration int
	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Mark attendance for a class sitting",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.selectClass(cmd.Context(), *classID); err != nil {
				return printableErr(err)
			}

			presentIDs := make(map[string]bool)
			for _, id := range strings.Split(present, ",") {
				if id = strings.TrimSpace(id); id != "" {
					presentIDs[id] = true
				}
			}

			sheet := state.AttendanceSheet{Date: date, SessionDuration: duration}
			for _, st := range a.State.Students() {
				sheet.Records = append(sheet.Records, state.AttendanceMark{
					StudentID: st.ID,
					Present:   presentIDs[st.ID] || presentIDs[st.USN],
				})
			}

			if err := a.Gateway.MarkAttendance(cmd.Context(), *classID, sheet); err != nil {
				return printableErr(err)
			}
			cmd.Printf("marked attendance for %d students\n", len(sheet.Records))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "sitting date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&present, "present", "", "comma-separated ids or USNs of present students")
	cmd.Flags().IntVar(&duration, "duration", 0, "session duration in minutes")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}
