package errors

import "errors"

// Custom application errors
var (
	ErrInvalidRange      = errors.New("invalid date range query")      // startDate is after endDate
	ErrMissingOwnerScope = errors.New("owner identity was not set")    // operation invoked without an owner
	ErrStoreFailure      = errors.New("record store operation failed") // record store round-trip failed
	ErrReminderNotFound  = errors.New("reminder not found")            // absent or owned by someone else
	ErrInvalidReminder   = errors.New("invalid reminder")              // request body failed validation
	ErrInvalidDate       = errors.New("invalid date format")           // query date is not YYYY-MM-DD
	ErrLineAPI           = errors.New("LINE API request failed")       // push or reply failed
	ErrScheduling        = errors.New("scheduling failed")             // cron registration failed
	ErrInternalServer    = errors.New("internal server error")         // generic internal error
)
