package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/state"
)

const studentsView = "students"

func (a *App) newStudentsCommand() *cobra.Command {
	var classID string
	cmd := &cobra.Command{
		Use:   "students",
		Short: "Manage a class's students",
		Annotations: map[string]string{
			viewAnnotation: studentsView,
		},
	}
	cmd.PersistentFlags().StringVar(&classID, "class", "", "class id")
	_ = cmd.MarkPersistentFlagRequired("class")

	cmd.AddCommand(a.newStudentsListCommand(&classID))
	cmd.AddCommand(a.newStudentsAddCommand(&classID))
	cmd.AddCommand(a.newStudentsUpdateCommand(&classID))
	cmd.AddCommand(a.newStudentsRemoveCommand(&classID))
	cmd.AddCommand(a.newStudentsFaceCommand(&classID))
	return cmd
}

func (a *App) newStudentsListCommand(classID *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the class's students",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.selectClass(cmd.Context(), *classID); err != nil {
				return printableErr(err)
			}
			for _, st := range a.State.Students() {
				cmd.Printf("%s\t%s\t%s\tsemester %d\n", st.ID, st.USN, st.Name, st.Semester)
			}
			return nil
		},
	}
}

func (a *App) newStudentsAddCommand(classID *string) *cobra.Command {
	var ns state.NewStudent
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a student in the class",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.Gateway.RegisterStudent(cmd.Context(), *classID, ns)
			if err != nil {
				return printableErr(err)
			}
			a.State.AddStudent(st)
			cmd.Printf("registered student %s (%s)\n", st.Name, st.USN)
			return nil
		},
	}
	cmd.Flags().StringVar(&ns.Name, "name", "", "student name")
	cmd.Flags().StringVar(&ns.USN, "usn", "", "university serial number")
	cmd.Flags().IntVar(&ns.Semester, "semester", 0, "semester (1-8)")
	cmd.Flags().StringVar(&ns.Department, "department", "", "department")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("usn")
	_ = cmd.MarkFlagRequired("semester")
	_ = cmd.MarkFlagRequired("department")
	return cmd
}

func (a *App) newStudentsUpdateCommand(classID *string) *cobra.Command {
	var ns state.NewStudent
	cmd := &cobra.Command{
		Use:   "update STUDENT_ID",
		Short: "Update a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.Gateway.UpdateStudent(cmd.Context(), *classID, args[0], ns)
			if err != nil {
				return printableErr(err)
			}
			a.State.UpdateStudent(st)
			cmd.Printf("updated student %s\n", st.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&ns.Name, "name", "", "student name")
	cmd.Flags().StringVar(&ns.USN, "usn", "", "university serial number")
	cmd.Flags().IntVar(&ns.Semester, "semester", 0, "semester (1-8)")
	cmd.Flags().StringVar(&ns.Department, "department", "", "department")
	return cmd
}

func (a *App) newStudentsRemoveCommand(classID *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove STUDENT_ID",
		Short: "Remove a student from the class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Gateway.DeleteStudent(cmd.Context(), *classID, args[0]); err != nil {
				return printableErr(err)
			}
			a.State.RemoveStudent(args[0])
			cmd.Printf("removed student %s\n", args[0])
			return nil
		},
	}
}

func (a *App) newStudentsFaceCommand(classID *string) *cobra.Command {
	return &cobra.Command{
		Use:   "face STUDENT_ID IMAGE_FILE",
		Short: "Upload a student's face image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer file.Close() //nolint:errcheck
			if err := a.Gateway.UploadStudentFace(cmd.Context(), *classID, args[0], filepath.Base(args[1]), file); err != nil {
				return printableErr(err)
			}
			cmd.Println("face image uploaded")
			return nil
		},
	}
}
