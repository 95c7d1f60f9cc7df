package worker

import "time"

type Worker struct {
	ID              string
	PersonnelNumber string
	FullName        string
	Phone           *string
	CreatedAt       time.Time
}
