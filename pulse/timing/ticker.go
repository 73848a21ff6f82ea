package timing

import (
	"sync"
	"time"

	"github.com/lguimbarda/min-pulse/pulse/core"
)

// tickerHandle cancels a running Ticker emission. The goroutine owns
// the delivery; Stop only closes the signal channel, so the final
// Stopped is pushed from the same goroutine as every other event.
type tickerHandle struct {
	once sync.Once
	stop chan struct{}
}

func (h *tickerHandle) Stop() {
	h.once.Do(func() { close(h.stop) })
}

// Ticker creates an emitter that pushes the fire time immediately on
// attach and then once per interval, until the terminator cancels it.
// Cancellation stops the underlying time.Ticker and delivers one final
// Stopped event.
func Ticker(interval time.Duration) core.Emitter[time.Time] {
	return func(down core.Sink[time.Time]) core.Terminator {
		h := &tickerHandle{stop: make(chan struct{})}
		go func() {
			tick := time.NewTicker(interval)
			defer tick.Stop()

			down(core.Ok(time.Now()))
			for {
				select {
				case <-h.stop:
					down(core.Stopped[time.Time]())
					return
				case now := <-tick.C:
					// Stop may have landed while a fire was pending;
					// prefer it so cancellation stays prompt.
					select {
					case <-h.stop:
						down(core.Stopped[time.Time]())
						return
					default:
					}
					down(core.Ok(now))
				}
			}
		}()
		return h
	}
}
