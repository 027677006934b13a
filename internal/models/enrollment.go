package models

import "time"

// Enrollment is an append-only record created after a successful payment.
type Enrollment struct {
	ID              string    `db:"id" json:"id"`
	StudentEmail    string    `db:"student_email" json:"email"`
	CourseID        string    `db:"course_id" json:"courseId"`
	ClassName       string    `db:"class_name" json:"className"`
	PaymentIntentID string    `db:"payment_intent_id" json:"paymentIntentId"`
	AmountCents     int64     `db:"amount_cents" json:"amountCents"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
