package activities

import "errors"

var (
	// ErrInvalidName matches every NameError via errors.Is.
	ErrInvalidName      = errors.New("Invalid activity name")
	ErrMissingEmail     = errors.New("Email is required")
	ErrInvalidEmail     = errors.New("Invalid email address")
	ErrActivityNotFound = errors.New("Activity not found")
	ErrAlreadySignedUp  = errors.New("Student is already signed up")
	ErrNotSignedUp      = errors.New("Student is not signed up for this activity")
)

// NameError บอกเหตุผลที่ชื่อกิจกรรมไม่ผ่านการตรวจสอบ
type NameError struct {
	Reason string
}

func (e *NameError) Error() string { return e.Reason }

func (e *NameError) Is(target error) bool { return target == ErrInvalidName }

// Outcome converts an operation result into a short label for metrics and logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidName):
		return "invalid_name"
	case errors.Is(err, ErrMissingEmail):
		return "missing_email"
	case errors.Is(err, ErrInvalidEmail):
		return "invalid_email"
	case errors.Is(err, ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadySignedUp):
		return "already_signed_up"
	case errors.Is(err, ErrNotSignedUp):
		return "not_signed_up"
	default:
		return "error"
	}
}
