package capture

import (
	"fmt"
	"time"
)

const nameLayout = "20060102_150405"

// Image is one screenshot recorded in the current session.
type Image struct {
	Name      string
	Timestamp time.Time
	Data      []byte
	Width     int
	Height    int
}

// nameSet hands out capture names unique within a session. Captures in the same
// second get a numeric suffix instead of overwriting each other.
type nameSet map[string]struct{}

func (s nameSet) next(ts time.Time) string {
	base := "screenshot_" + ts.Format(nameLayout)
	name := base + ".png"
	for i := 2; ; i++ {
		if _, taken := s[name]; !taken {
			break
		}
		name = fmt.Sprintf("%s_%d.png", base, i)
	}
	s[name] = struct{}{}
	return name
}
