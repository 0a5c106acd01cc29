package types

import "errors"

var (
	ErrUnknownProtocol = errors.New("unknown output protocol")
	ErrNoFamilies      = errors.New("no resource families selected")
)
