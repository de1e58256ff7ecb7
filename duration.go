package csv2docx

import (
	"fmt"
	"strconv"
	"strings"
)

// ComputeDuration returns ", N ans" when start and end are integer years and
// end is after start. Anything else yields "".
func ComputeDuration(start, end string) string {
	s, err := strconv.Atoi(strings.TrimSpace(start))
	if err != nil {
		return ""
	}
	e, err := strconv.Atoi(strings.TrimSpace(end))
	if err != nil {
		return ""
	}
	if n := e - s; n > 0 {
		return fmt.Sprintf(", %d ans", n)
	}
	return ""
}
