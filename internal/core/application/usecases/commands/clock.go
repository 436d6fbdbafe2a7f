package commands

import "time"

// Clock supplies the current time to handlers. A nil Clock reads the wall clock in UTC.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c()
}
