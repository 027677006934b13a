package delivery

import "github.com/SlavaShagalov/camp-enroll/internal/models"

type CreateClassDTO struct {
	Name           string  `json:"className" validate:"required"`
	Thumbnail      string  `json:"classThumbnail"`
	InstructorName string  `json:"instructorName"`
	Price          float64 `json:"price" validate:"gte=0"`
	AvailableSeats int     `json:"availableSeats" validate:"gte=0"`
	Description    string  `json:"description"`
}

type UpdateClassDTO struct {
	Name           string  `json:"className" validate:"required"`
	Thumbnail      string  `json:"classThumbnail"`
	Price          float64 `json:"price" validate:"gte=0"`
	AvailableSeats int     `json:"availableSeats" validate:"gte=0"`
	Description    string  `json:"description"`
}

type ChangeStatusDTO struct {
	Status models.ClassStatus `json:"status" validate:"required,oneof=pending approved denied"`
}

type UpdatedResponse struct {
	Updated int64 `json:"updated"`
}
