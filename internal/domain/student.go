package domain

import "time"

// BirthdayLayout is the textual format birthdays are exchanged and persisted
// in: ISO-like with microsecond precision.
const BirthdayLayout = "2006-01-02T15:04:05.000000"

type Student struct {
	ID       int64
	Name     string
	Room     int64
	Sex      string
	Birthday time.Time
}

// NewStudent carries already-validated fields for creation. Shape checks
// (sex is M/F, birthday parsed) happen at the transport boundary; the
// room-exists check happens in the service layer.
type NewStudent struct {
	Name     string
	Room     int64
	Sex      string
	Birthday time.Time
}

// StudentPatch is a partial update: nil fields are left untouched.
type StudentPatch struct {
	Name     *string
	Room     *int64
	Sex      *string
	Birthday *time.Time
}
