// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate. It is used to pace instruction execution and to pace display updates.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(60)
//	defer lim.Close()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		renderImage()
//	}
//
// Alternatively, HasWaited() can be used to check whether the next event is
// due, without blocking.
package limiter

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Limiter will trigger rate times per second.
type Limiter struct {
	period atomic.Int64 // time.Duration

	tick chan bool
	quit chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The rate must be greater than zero.
func NewLimiter(rate int) (*Limiter, error) {
	lim := &Limiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}

	if err := lim.SetLimit(rate); err != nil {
		return nil, err
	}

	// run ticker concurrently. the sleep period is adjusted to compensate for
	// the time taken by the loop itself, including the time spent waiting for
	// the tick to be received
	go func() {
		adjusted := lim.Period()
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			time.Sleep(adjusted)

			nt := time.Now()
			p := lim.Period()
			adjusted -= nt.Sub(t) - p
			t = nt

			// a slow receiver must not cause a burst of ticks once it catches up
			if adjusted < 0 {
				adjusted = 0
			} else if adjusted > p {
				adjusted = p
			}
		}
	}()

	return lim, nil
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(rate int) error {
	if rate <= 0 {
		return fmt.Errorf("limiter: rate must be greater than zero (%d)", rate)
	}
	lim.period.Store(int64(time.Second / time.Duration(rate)))
	return nil
}

// Period returns the time between each trigger.
func (lim *Limiter) Period() time.Duration {
	return time.Duration(lim.period.Load())
}

// Wait will block until the next trigger. Must not be called after Close().
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if the trigger has happened and false if it is
// still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Close stops the Limiter. It should be called when the Limiter is no longer
// required.
func (lim *Limiter) Close() {
	close(lim.quit)
}
