package deluxetable

import (
	"fmt"
	"strings"
)

// Locate finds the first \startdata and the first \enddata line.
// Further marker lines are recorded in Region.Duplicates but otherwise ignored.
func Locate(lines []string) (Region, error) {
	region := Region{Start: -1, End: -1}

	for i, line := range lines {
		switch trimEOL(line) {
		case StartMarker:
			if region.Start < 0 {
				region.Start = i
			} else {
				region.Duplicates = append(region.Duplicates, i)
			}
		case EndMarker:
			if region.End < 0 {
				region.End = i
			} else {
				region.Duplicates = append(region.Duplicates, i)
			}
		}
	}

	switch {
	case region.Start < 0:
		return region, fmt.Errorf("%w: missing %s line", ErrMalformedTable, StartMarker)
	case region.End < 0:
		return region, fmt.Errorf("%w: missing %s line", ErrMalformedTable, EndMarker)
	case region.End < region.Start:
		return region, fmt.Errorf("%w: %s on line %d precedes %s on line %d",
			ErrMalformedTable, EndMarker, region.End+1, StartMarker, region.Start+1)
	case region.Len() == 0:
		return region, fmt.Errorf("%w: no rows between %s and %s", ErrMalformedTable, StartMarker, EndMarker)
	}

	return region, nil
}

// trimEOL drops a trailing "\n" or "\r\n".
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// lineEnding returns the line terminator used by line, defaulting to "\n".
func lineEnding(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return "\r\n"
	}
	return "\n"
}
