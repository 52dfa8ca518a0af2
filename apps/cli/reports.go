package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/state"
	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/reports"
)

const reportsView = "reports"

func (a *App) newReportCommand() *cobra.Command {
	var classID string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Attendance and attentiveness reports",
		Annotations: map[string]string{
			viewAnnotation: reportsView,
		},
	}
	cmd.PersistentFlags().StringVar(&classID, "class", "", "class id")
	_ = cmd.MarkPersistentFlagRequired("class")

	cmd.AddCommand(a.newReportShowCommand(&classID))
	cmd.AddCommand(a.newReportExportCommand(&classID))
	return cmd
}

func (a *App) fetchReport(cmd *cobra.Command, classID string) ([]state.StudentReport, error) {
	token := a.State.BeginFetch(state.ResourceReports)
	rows, err := a.Gateway.ClassReport(cmd.Context(), classID)
	a.State.EndFetch(state.ResourceReports, token)
	return rows, err
}

func (a *App) newReportShowCommand(classID *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the class report",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := a.fetchReport(cmd, *classID)
			if err != nil {
				return printableErr(err)
			}
			for _, r := range rows {
				cmd.Printf("%s\t%s\t%.1f%%\t%.1f\t%d/%d\n",
					r.StudentUSN, r.StudentName, r.AttendancePercentage,
					r.AverageAttentiveness, r.PresentClasses, r.TotalClasses)
			}
			return nil
		},
	}
}

func (a *App) newReportExportCommand(classID *string) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the class report to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Create(out)
			if err != nil {
				return err
			}
			defer file.Close() //nolint:errcheck

			switch format {
			case "xlsx":
				cls, err := a.selectClass(cmd.Context(), *classID)
				if err != nil {
					return printableErr(err)
				}
				rows, err := a.fetchReport(cmd, *classID)
				if err != nil {
					return printableErr(err)
				}
				if err := reports.WriteClassReportXLSX(file, cls, rows); err != nil {
					return err
				}
			case "csv":
				if err := a.Gateway.ExportReportCSV(cmd.Context(), *classID, nil, file); err != nil {
					return printableErr(err)
				}
			case "pdf":
				if err := a.Gateway.ExportReportPDF(cmd.Context(), *classID, nil, file); err != nil {
					return printableErr(err)
				}
			default:
				return fmt.Errorf("unknown format %q: must be xlsx, csv or pdf", format)
			}
			cmd.Printf("report written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "xlsx", "export format (xlsx|csv|pdf)")
	cmd.Flags().StringVar(&out, "out", "report.xlsx", "output file")
	return cmd
}
