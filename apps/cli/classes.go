package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/state"
)

const classesView = "classes"

func (a *App) newClassesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "Manage your classes",
		Annotations: map[string]string{
			viewAnnotation: classesView,
		},
	}
	cmd.AddCommand(a.newClassesListCommand())
	cmd.AddCommand(a.newClassesCreateCommand())
	cmd.AddCommand(a.newClassesUpdateCommand())
	cmd.AddCommand(a.newClassesDeleteCommand())
	return cmd
}

// fetchClasses loads the class list into the store through the sequence-
// guarded fetch path.
func (a *App) fetchClasses(ctx context.Context) error {
	token := a.State.BeginFetch(state.ResourceClasses)
	list, err := a.Gateway.Classes(ctx)
	if err != nil {
		a.State.FailFetch(state.ResourceClasses, token)
		return err
	}
	a.State.CompleteClassFetch(token, list)
	return nil
}

// selectClass loads the class list, focuses the class with the given id and
// loads its students.
func (a *App) selectClass(ctx context.Context, classID string) (state.Class, error) {
	if err := a.fetchClasses(ctx); err != nil {
		return state.Class{}, err
	}
	var cls state.Class
	var found bool
	for _, c := range a.State.Classes() {
		if c.ID == classID {
			cls, found = c, true
			break
		}
	}
	if !found {
		return state.Class{}, fmt.Errorf("class %s not found", classID)
	}
	a.State.SelectClass(cls)

	token := a.State.BeginFetch(state.ResourceStudents)
	students, err := a.Gateway.Students(ctx, cls.ID)
	if err != nil {
		a.State.FailFetch(state.ResourceStudents, token)
		return state.Class{}, err
	}
	a.State.CompleteStudentFetch(token, students)
	return cls, nil
}

func (a *App) newClassesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.fetchClasses(cmd.Context()); err != nil {
				return printableErr(err)
			}
			for _, cls := range a.State.Classes() {
				cmd.Printf("%s\t%s\t%s\tsemester %d\n", cls.ID, cls.Subject, cls.ClassName, cls.Semester)
			}
			return nil
		},
	}
}

func (a *App) newClassesCreateCommand() *cobra.Command {
	var nc state.NewClass
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a class",
		RunE: func(cmd *cobra.Command, args []string) error {
			cls, err := a.Gateway.CreateClass(cmd.Context(), nc)
			if err != nil {
				return printableErr(err)
			}
			a.State.AddClass(cls)
			cmd.Printf("created class %s\n", cls.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&nc.Subject, "subject", "", "subject")
	cmd.Flags().IntVar(&nc.Semester, "semester", 0, "semester (1-8)")
	cmd.Flags().StringVar(&nc.ClassName, "class-name", "", "class name")
	cmd.Flags().StringVar(&nc.Description, "description", "", "description")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("semester")
	_ = cmd.MarkFlagRequired("class-name")
	return cmd
}

func (a *App) newClassesUpdateCommand() *cobra.Command {
	var nc state.NewClass
	cmd := &cobra.Command{
		Use:   "update CLASS_ID",
		Short: "Update a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cls, err := a.Gateway.UpdateClass(cmd.Context(), args[0], nc)
			if err != nil {
				return printableErr(err)
			}
			a.State.UpdateClass(cls)
			cmd.Printf("updated class %s\n", cls.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&nc.Subject, "subject", "", "subject")
	cmd.Flags().IntVar(&nc.Semester, "semester", 0, "semester (1-8)")
	cmd.Flags().StringVar(&nc.ClassName, "class-name", "", "class name")
	cmd.Flags().StringVar(&nc.Description, "description", "", "description")
	return cmd
}

func (a *App) newClassesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CLASS_ID",
		Short: "Delete a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Gateway.DeleteClass(cmd.Context(), args[0]); err != nil {
				return printableErr(err)
			}
			a.State.RemoveClass(args[0])
			cmd.Printf("deleted class %s\n", args[0])
			return nil
		},
	}
}
