package domain

import (
	"errors"
	"strings"
)

var ErrInvalidStatus = errors.New("invalid order status")

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusProcessed OrderStatus = "processed"
)

// ParseOrderStatus accepts only the two known statuses, case-insensitively.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusPending:
		return StatusPending, nil
	case StatusProcessed:
		return StatusProcessed, nil
	}
	return "", ErrInvalidStatus
}

// CanTransitionTo reports whether s may move to next. Re-applying the current
// status is allowed; processed is terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	return s == StatusPending && next == StatusProcessed
}
