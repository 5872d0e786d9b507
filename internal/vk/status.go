package vk

import (
	"fmt"
	"strings"
)

// Status is the maturity of a layer or of an individual setting.
type Status int

const (
	StatusStable Status = iota
	StatusBeta
	StatusAlpha
	StatusDeprecated
)

var statusTokens = map[Status]string{
	StatusStable:     "STABLE",
	StatusBeta:       "BETA",
	StatusAlpha:      "ALPHA",
	StatusDeprecated: "DEPRECATED",
}

// Token returns the stable uppercase token used in manifests and in
// generated documentation.
func (s Status) Token() string {
	if token, ok := statusTokens[s]; ok {
		return token
	}
	return "UNKNOWN"
}

// String makes Status satisfy fmt.Stringer.
func (s Status) String() string { return s.Token() }

// ParseStatus maps a manifest token to its Status. An empty token means the
// manifest did not declare one and defaults to stable.
func ParseStatus(token string) (Status, error) {
	if token == "" {
		return StatusStable, nil
	}
	for status, t := range statusTokens {
		if strings.EqualFold(t, token) {
			return status, nil
		}
	}
	return StatusStable, fmt.Errorf("unknown status %q", token)
}
