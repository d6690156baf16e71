package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNeedNotFound         = errors.New("supply need not found")
	ErrBatchNotFound        = errors.New("distribution batch not found")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrCaseNotFound         = errors.New("case not found")
	ErrWorkerNotFound       = errors.New("worker not found")
	ErrSupplyNotFound       = errors.New("supply item not found")
	ErrMediaNotFound        = errors.New("media not found")
)

var notFoundErrors = []error{
	ErrNeedNotFound,
	ErrBatchNotFound,
	ErrActivityNotFound,
	ErrRegistrationNotFound,
	ErrCaseNotFound,
	ErrWorkerNotFound,
	ErrSupplyNotFound,
	ErrMediaNotFound,
}

func IsNotFound(err error) bool {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// InvalidTransitionError is returned when a status change precondition does
// not hold. The row it refers to is guaranteed unchanged.
type InvalidTransitionError struct {
	From    string
	To      string
	Message string
}

func (e *InvalidTransitionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

func NewInvalidTransition(from, to, message string) error {
	return &InvalidTransitionError{From: from, To: to, Message: message}
}

func IsInvalidTransition(err error) bool {
	var ite *InvalidTransitionError
	return errors.As(err, &ite)
}

// PersistenceError wraps a store failure so handlers can distinguish it from
// client errors.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func WrapPersistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
