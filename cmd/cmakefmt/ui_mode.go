package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode selects the progress view of `fmt`.
type uiMode uint8

const (
	uiAuto uiMode = iota
	uiOn
	uiOff
)

func (m uiMode) String() string {
	switch m {
	case uiOn:
		return "on"
	case uiOff:
		return "off"
	default:
		return "auto"
	}
}

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiAuto, nil
	case "on", "always":
		return uiOn, nil
	case "off", "never":
		return uiOff, nil
	}
	return uiAuto, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// shouldUseTUI resolves auto: an interactive stdout outside CI, a terminal
// that can redraw, and no --quiet.
func shouldUseTUI(mode uiMode, quiet bool) bool {
	switch mode {
	case uiOn:
		return true
	case uiOff:
		return false
	}
	if quiet || os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal(os.Stdout)
}
