package errors

import "fmt"

var (
	ErrInvalidInput  = fmt.Errorf("invalid input")
	ErrUserCancelled = fmt.Errorf("cancelled by user")
	ErrUnexpected    = fmt.Errorf("unexpected error")

	ErrNoNames             = fmt.Errorf("%w: please enter at least one name", ErrInvalidInput)
	ErrNotEnoughNames      = fmt.Errorf("%w: please enter at least two names", ErrInvalidInput)
	ErrBlankName           = fmt.Errorf("%w: names cannot be blank", ErrInvalidInput)
	ErrGroupCountNotNumber = fmt.Errorf("%w: number of groups must be a whole number", ErrInvalidInput)
	ErrGroupCountTooSmall  = fmt.Errorf("%w: number of groups must be at least 2", ErrInvalidInput)
	ErrTooManyGroups       = fmt.Errorf("%w: number of groups exceeds the number of names", ErrInvalidInput)

	ErrNotInteractive     = fmt.Errorf("input is not a terminal: pass --names and --groups")
	ErrInvalidGroupCount  = fmt.Errorf("group count out of range")
	ErrUnknownRenderStyle = fmt.Errorf("unknown render style")
)
