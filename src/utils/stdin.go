package utils

import (
	"bufio"
	"strings"
)

// ReadLine reads one line from reader into output, trimming the trailing
// newline.
func ReadLine(reader *bufio.Reader, output *string) error {
	line, err := reader.ReadString('\n')
	if err != nil {
		*output = ""
		return err
	}

	*output = strings.TrimRight(line, "\r\n")

	return nil
}
