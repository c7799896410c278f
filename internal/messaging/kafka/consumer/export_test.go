package consumer

import "time"

func SetRefreshBackoff(fn func(attempt int) time.Duration) (restore func()) {
	prev := refreshBackoff
	refreshBackoff = fn
	return func() { refreshBackoff = prev }
}
