// Package meeting generates join links for meetings.
package meeting

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"
)

const (
	Zoom  = "zoom"
	Teams = "teams"
	Other = "other"
)

// NoLink is used for platforms without a known join URL.
const NoLink = "#"

// Platforms lists the platform names the CLI offers.
var Platforms = []string{Zoom, Teams, Other}

// Link returns a join URL for a meeting. The room number is derived from the
// title and start, so the same meeting always gets the same link.
func Link(platform, title string, start time.Time) string {
	switch strings.ToLower(strings.TrimSpace(platform)) {
	case Zoom:
		return fmt.Sprintf("https://zoom.us/j/%d", room(title, start))
	case Teams:
		return fmt.Sprintf("https://teams.microsoft.com/l/meetup-join/%d", room(title, start))
	}
	return NoLink
}

func room(title string, start time.Time) uint64 {
	h := fnv.New64a()
	h.Write([]byte(title))
	h.Write([]byte(start.UTC().Format(time.RFC3339)))
	return h.Sum64() % 1_000_000_000
}
