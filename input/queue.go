// Package input turns raw keyboard bytes into game intents and carries them
// to the game loop.
package input

import (
	"sync/atomic"

	"snake-term/game/types"
)

// Queue is a bounded mailbox between one producer (input capture) and one
// consumer (the game loop). When full, the oldest directional intent is
// dropped. Quit is latched separately and never dropped.
type Queue struct {
	ch      chan types.Intent
	quit    atomic.Bool
	dropped atomic.Uint64
}

func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{ch: make(chan types.Intent, capacity)}
}

// Push never blocks.
func (q *Queue) Push(intent types.Intent) {
	if intent.Kind == types.IntentQuit {
		q.quit.Store(true)
		return
	}
	for {
		select {
		case q.ch <- intent:
			return
		default:
		}
		select {
		case <-q.ch:
			q.dropped.Add(1)
		default:
		}
	}
}

// DrainAll returns, in arrival order, every intent queued before the call
// and leaves later pushes for the next drain. A latched quit is appended
// last.
func (q *Queue) DrainAll() []types.Intent {
	n := len(q.ch)
	out := make([]types.Intent, 0, n+1)
drain:
	for i := 0; i < n; i++ {
		select {
		case intent := <-q.ch:
			out = append(out, intent)
		default:
			break drain
		}
	}
	if q.quit.Swap(false) {
		out = append(out, types.Quit)
	}
	return out
}

// Dropped is the number of intents discarded on overflow so far.
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}

// Len is the number of directional intents currently waiting.
func (q *Queue) Len() int {
	return len(q.ch)
}
