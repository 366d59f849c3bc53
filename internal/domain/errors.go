package domain

import "errors"

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrStudentNotFound = errors.New("student not found")
)
