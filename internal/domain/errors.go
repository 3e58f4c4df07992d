package domain

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidSeatNumber    = errors.New("invalid seat number")
	ErrSeatUnavailable      = errors.New("seat is already booked")
	ErrReportNotFound       = errors.New("report not found")
)
