package models

import "time"

type ClassStatus string

const (
	ClassPending  ClassStatus = "pending"
	ClassApproved ClassStatus = "approved"
	ClassDenied   ClassStatus = "denied"
)

type Class struct {
	ID              string      `db:"id" json:"id"`
	Name            string      `db:"name" json:"className"`
	Thumbnail       string      `db:"thumbnail" json:"classThumbnail"`
	InstructorEmail string      `db:"instructor_email" json:"instructorEmail"`
	InstructorName  string      `db:"instructor_name" json:"instructorName"`
	Price           float64     `db:"price" json:"price"`
	AvailableSeats  int         `db:"available_seats" json:"availableSeats"`
	Description     string      `db:"description" json:"description"`
	Status          ClassStatus `db:"status" json:"status"`
	Enrolled        int         `db:"enrolled" json:"enrolled"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`
}
