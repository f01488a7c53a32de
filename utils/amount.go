package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmount converts a textual money amount to a nullable float.
// Empty or malformed input returns nil so the column stores NULL,
// keeping "not yet entered" distinct from "zero charge".
func ParseAmount(value string) *float64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &amount
}

// FormatAmount renders a nullable amount with two decimal places.
// A nil amount renders as the empty string.
func FormatAmount(amount *float64) string {
	if amount == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *amount)
}
