package types

import (
	"fmt"
	"strings"
)

// Protocol selects the report output format.
type Protocol string

const (
	ProtocolTermio Protocol = "termio"
	ProtocolHTML   Protocol = "html"
)

// ParseProtocol validates an output protocol name.
func ParseProtocol(name string) (Protocol, error) {
	switch p := Protocol(strings.ToLower(name)); p {
	case ProtocolTermio, ProtocolHTML:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q (choose from termio, html)", ErrUnknownProtocol, name)
}

// CLIArgs represents the command-line arguments merged with the config file.
type CLIArgs struct {
	Protocol   Protocol
	File       string
	Profile    string
	Region     string
	Families   []string
	ReportName string
	ReportType []string
	Dir        string
}
