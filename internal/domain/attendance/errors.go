package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDuplicateEntry     = errors.New("employee already has an attendance entry for this date and department")
)
