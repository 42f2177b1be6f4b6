package util

import (
	"fmt"

	"rr-simulator/internal/core"
)

// ProcessColors gives every distinct process name in slices a hue, in order
// of first appearance on the timeline.
func ProcessColors(slices []core.ExecutionSlice) map[string]string {
	names := make([]string, 0, len(slices))
	for _, s := range slices {
		names = append(names, s.Process)
	}
	return ColorsFor(names)
}

// ColorsFor assigns hues to names in order, skipping repeats. Round robin
// first dispatches in input order, so the input process list yields the same
// colours as the finished timeline.
func ColorsFor(names []string) map[string]string {
	colors := make(map[string]string)
	for _, name := range names {
		if _, ok := colors[name]; ok {
			continue
		}
		colors[name] = fmt.Sprintf("hsl(%d, 100%%, 50%%)", (len(colors)*60)%360)
	}
	return colors
}
