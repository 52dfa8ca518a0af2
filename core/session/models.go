package session

// Teacher is the authenticated user's profile as returned by the server.
type Teacher struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TeacherID  string `json:"teacher_id"`
	Department string `json:"department"`
}

// Login carries the credentials submitted to the login operation.
type Login struct {
	TeacherID string `json:"teacher_id" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// NewTeacher carries a registration request.
// Password policy is enforced locally before any network call; see validators.go.
type NewTeacher struct {
	Name       string `json:"name" validate:"required"`
	TeacherID  string `json:"teacher_id" validate:"required,alphanum_"`
	Department string `json:"department" validate:"required"`
	Password   string `json:"password" validate:"required"`
}
