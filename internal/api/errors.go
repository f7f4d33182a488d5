package api

import (
	"errors"
	"fmt"
)

// ErrStatus marks a non-success HTTP response.
var ErrStatus = errors.New("unexpected response status")

// OpError wraps a failed backend operation with its context.
type OpError struct {
	Op       string
	Resource string
	ID       int64
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapTaskErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "task", ID: id, Err: err}
}

func wrapProfessionErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "profession task", ID: id, Err: err}
}

func wrapPhysicalErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "physical", ID: id, Err: err}
}

func wrapReminderErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "reminder", ID: id, Err: err}
}
