package entity

import "errors"

var (
	ErrUnknownPeriod    = errors.New("unknown expiry period")
	ErrPeriodOutOfRange = errors.New("expiry period must be between 0 and 30 days")
	ErrInvalidHorizon   = errors.New("expiry horizon must be between 1 and 30 days")
	ErrUnknownFamily    = errors.New("unknown resource family")
)
