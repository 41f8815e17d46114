package book

import "errors"

var (
	ErrInvalidStatus       = errors.New("invalid book status")
	ErrInvalidCondition    = errors.New("invalid book condition")
	ErrNotAvailable        = errors.New("book is not available for checkout")
	ErrNotHeldByUser       = errors.New("book is not checked out by this user")
	ErrCheckedOut          = errors.New("book is currently checked out")
	ErrInvalidCheckoutDays = errors.New("checkout days must be positive")
	ErrInvalidExtendDays   = errors.New("extend days must be positive")
	ErrLoanFieldsMismatch  = errors.New("loan fields inconsistent with status")
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusCheckedOut  Status = "checked_out"
	StatusReserved    Status = "reserved"
	StatusMaintenance Status = "maintenance"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable, StatusCheckedOut, StatusReserved, StatusMaintenance:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

func NewCondition(s string) (Condition, error) {
	switch Condition(s) {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return Condition(s), nil
	default:
		return "", ErrInvalidCondition
	}
}

func (c Condition) String() string {
	return string(c)
}
