// Package service содержит общую таксономию ошибок, которую возвращают
// сервисы user, order и laundry. Все ошибки - ожидаемые исходы для вызывающего.
package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAlreadyPaid         = errors.New("laundry already paid")
	ErrLaundryNotDone      = errors.New("laundry not done")
	ErrLaundryAlreadyDone  = errors.New("laundry is already marked as done")
)

var (
	ErrUserNotFound  = fmt.Errorf("user %w", ErrNotFound)
	ErrOrderNotFound = fmt.Errorf("laundry %w", ErrNotFound)
	ErrNoUsers       = fmt.Errorf("no users found: %w", ErrNotFound)
	ErrNoOrders      = fmt.Errorf("no laundries found: %w", ErrNotFound)

	ErrInvalidPackage = fmt.Errorf("invalid package type: %w", ErrInvalidInput)
	ErrInvalidWeight  = fmt.Errorf("weight overflows amount to pay: %w", ErrInvalidInput)
	ErrRecordTooLarge = fmt.Errorf("record exceeds storage bound: %w", ErrInvalidInput)
	ErrOwnerMismatch  = fmt.Errorf("invalid user: %w", ErrInvalidInput)
	ErrNoFinishTime   = fmt.Errorf("laundry has no finish time: %w", ErrInvalidInput)
)

// NotDoneError - стирка ещё идёт; Hours и Minutes - остаток до дедлайна,
// округлённый вниз.
type NotDoneError struct {
	Hours   uint64
	Minutes uint64
}

func NewNotDoneError(remaining time.Duration) *NotDoneError {
	if remaining < 0 {
		remaining = 0
	}
	hours := uint64(remaining / time.Hour)
	minutes := uint64((remaining - time.Duration(hours)*time.Hour) / time.Minute)
	return &NotDoneError{Hours: hours, Minutes: minutes}
}

func (e *NotDoneError) Error() string {
	return fmt.Sprintf("%s, time left: %dh %dm", ErrLaundryNotDone, e.Hours, e.Minutes)
}

func (e *NotDoneError) Is(target error) bool {
	return target == ErrLaundryNotDone
}
