package state

import "time"

// Class is one of the authenticated teacher's classes, as returned by the
// server. IDs are server-assigned and unique within the collection.
type Class struct {
	ID          string    `json:"id"`
	Subject     string    `json:"subject"`
	Semester    int       `json:"semester"`
	ClassName   string    `json:"class_name"`
	Description string    `json:"description,omitempty"`
	TeacherID   string    `json:"teacher_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewClass carries a class create/update request.
type NewClass struct {
	Subject     string `json:"subject" validate:"required"`
	Semester    int    `json:"semester" validate:"required,min=1,max=8"`
	ClassName   string `json:"class_name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// Student belongs to exactly one class; the client only ever holds the
// students of the currently selected class.
type Student struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	USN          string    `json:"usn"`
	Semester     int       `json:"semester"`
	Department   string    `json:"department"`
	ClassID      string    `json:"class_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

// NewStudent carries a student registration/update request.
type NewStudent struct {
	Name       string `json:"name" validate:"required"`
	USN        string `json:"usn" validate:"required,alphanum_"`
	Semester   int    `json:"semester" validate:"required,min=1,max=8"`
	Department string `json:"department" validate:"required"`
}

// AttendanceMark is one student's entry in an attendance sheet.
type AttendanceMark struct {
	StudentID          string  `json:"student_id"`
	Present            bool    `json:"present"`
	AttentivenessScore float64 `json:"attentiveness_score"`
}

// AttendanceSheet is a full class sitting submitted in one call.
type AttendanceSheet struct {
	Date            string           `json:"date" validate:"required"`
	Records         []AttendanceMark `json:"records" validate:"required,min=1"`
	SessionDuration int              `json:"session_duration"` // minutes
}

// AttendanceEntry is a stored attendance record joined with student details.
type AttendanceEntry struct {
	ID                 string  `json:"id"`
	StudentName        string  `json:"student_name"`
	StudentUSN         string  `json:"student_usn"`
	Date               string  `json:"date"`
	Present            bool    `json:"present"`
	AttentivenessScore float64 `json:"attentiveness_score"`
	SessionDuration    int     `json:"session_duration"`
}

// StudentReport aggregates one student's attendance and attentiveness over a
// class.
type StudentReport struct {
	StudentID            string  `json:"student_id"`
	StudentName          string  `json:"student_name"`
	StudentUSN           string  `json:"student_usn"`
	AttendancePercentage float64 `json:"attendance_percentage"`
	AverageAttentiveness float64 `json:"average_attentiveness"`
	TotalClasses         int     `json:"total_classes"`
	PresentClasses       int     `json:"present_classes"`
}

// LiveSession describes an in-progress live attentiveness capture.
type LiveSession struct {
	ID        string    `json:"id"`
	ClassID   string    `json:"class_id"`
	Status    string    `json:"status"`
	StartedAt time.Time `json:"started_at"`
}
