package api

import (
	"context"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/session"
)

var _ session.Authenticator = (*Client)(nil)

// Login exchanges credentials for a bearer token and the teacher's profile.
func (c *Client) Login(ctx context.Context, teacherID, password string) (string, session.Teacher, error) {
	body := session.Login{TeacherID: teacherID, Password: password}
	var payload struct {
		AccessToken string          `json:"access_token"`
		TokenType   string          `json:"token_type"`
		Teacher     session.Teacher `json:"teacher"`
	}
	if err := c.post(ctx, "/auth/login", body, &payload); err != nil {
		return "", session.Teacher{}, err
	}
	return payload.AccessToken, payload.Teacher, nil
}

// Register creates a teacher account; it does not authenticate.
func (c *Client) Register(ctx context.Context, nt session.NewTeacher) error {
	return c.post(ctx, "/auth/register", nt, nil)
}

// Profile fetches the authenticated teacher's profile.
func (c *Client) Profile(ctx context.Context) (session.Teacher, error) {
	var tchr session.Teacher
	if err := c.get(ctx, "/teacher/profile", &tchr); err != nil {
		return session.Teacher{}, err
	}
	return tchr, nil
}
