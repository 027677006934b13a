package models

import "time"

// Selection is a student's pending intent to enroll in a class before payment.
type Selection struct {
	ID           string    `db:"id" json:"id"`
	StudentEmail string    `db:"student_email" json:"email"`
	CourseID     string    `db:"course_id" json:"courseId"`
	Selected     bool      `db:"selected" json:"selected"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
