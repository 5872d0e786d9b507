package vk

import (
	"fmt"
	"strings"
)

// Platforms is a bitmask of operating systems a layer or setting supports.
type Platforms uint32

const (
	PlatformWindows Platforms = 1 << iota
	PlatformLinux
	PlatformMacOS
	PlatformAndroid
)

// PlatformAll has every known platform bit set.
const PlatformAll = PlatformWindows | PlatformLinux | PlatformMacOS | PlatformAndroid

// platformOrder fixes the canonical ordering used for every rendered
// platform list, independent of the order bits were set in.
var platformOrder = []struct {
	flag  Platforms
	token string
}{
	{PlatformWindows, "Windows"},
	{PlatformLinux, "Linux"},
	{PlatformMacOS, "macOS"},
	{PlatformAndroid, "Android"},
}

// Has reports whether every bit of flag is set in p.
func (p Platforms) Has(flag Platforms) bool {
	return p&flag == flag
}

// Tokens returns the human-readable names of the set bits in canonical order.
// An empty mask yields an empty slice.
func (p Platforms) Tokens() []string {
	var tokens []string
	for _, entry := range platformOrder {
		if p.Has(entry.flag) {
			tokens = append(tokens, entry.token)
		}
	}
	return tokens
}

// String renders the mask as a comma-joined token list; an empty mask
// renders as the empty string.
func (p Platforms) String() string {
	return strings.Join(p.Tokens(), ", ")
}

// ParsePlatform maps a single manifest token to its platform bit.
func ParsePlatform(token string) (Platforms, error) {
	for _, entry := range platformOrder {
		if strings.EqualFold(entry.token, token) {
			return entry.flag, nil
		}
	}
	return 0, fmt.Errorf("unknown platform %q", token)
}

// ParsePlatforms folds a manifest token list into a bitmask. An empty list
// means the layer did not restrict its platforms and maps to PlatformAll.
func ParsePlatforms(tokens []string) (Platforms, error) {
	if len(tokens) == 0 {
		return PlatformAll, nil
	}

	var mask Platforms
	for _, token := range tokens {
		flag, err := ParsePlatform(token)
		if err != nil {
			return 0, err
		}
		mask |= flag
	}
	return mask, nil
}
