package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmountPair converts a line holding two whitespace-separated amounts
// into (available, present) floats.
func ParseAmountPair(input string) (float64, float64, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected two amounts separated by whitespace, found %d", len(fields))
	}

	available, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to convert '%s' to float: %v", fields[0], err)
	}

	present, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to convert '%s' to float: %v", fields[1], err)
	}

	return available, present, nil
}
