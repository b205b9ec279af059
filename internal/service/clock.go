package service

import "time"

// Clock returns the current time. Services take one so tests can freeze "today".
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}
