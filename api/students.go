package api

import (
	"context"
	"fmt"
	"io"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/state"
)

// RegisterStudent adds a student to a class.
func (c *Client) RegisterStudent(ctx context.Context, classID string, ns state.NewStudent) (state.Student, error) {
	var st state.Student
	if err := c.post(ctx, fmt.Sprintf("/classes/%s/students", classID), ns, &st); err != nil {
		return state.Student{}, err
	}
	return st, nil
}

// Students lists a class's students in server order.
func (c *Client) Students(ctx context.Context, classID string) ([]state.Student, error) {
	var list []state.Student
	if err := c.get(ctx, fmt.Sprintf("/classes/%s/students", classID), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateStudent replaces a student's details.
func (c *Client) UpdateStudent(ctx context.Context, classID, studentID string, ns state.NewStudent) (state.Student, error) {
	var st state.Student
	if err := c.put(ctx, fmt.Sprintf("/classes/%s/students/%s", classID, studentID), ns, &st); err != nil {
		return state.Student{}, err
	}
	return st, nil
}

// DeleteStudent removes a student from a class.
func (c *Client) DeleteStudent(ctx context.Context, classID, studentID string) error {
	return c.delete(ctx, fmt.Sprintf("/classes/%s/students/%s", classID, studentID))
}

// UploadStudentFace attaches a face image to a student for attentiveness
// tracking; the server extracts the embedding.
func (c *Client) UploadStudentFace(ctx context.Context, classID, studentID, filename string, image io.Reader) error {
	path := fmt.Sprintf("/classes/%s/students/%s/face", classID, studentID)
	return c.upload(ctx, path, "face_image", filename, image, nil)
}
