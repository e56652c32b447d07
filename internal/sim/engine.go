// Package sim implements the discrete-event clock that drives the whole
// simulation. Every other component expresses waiting, blocking, and periodic
// ticks as chains of scheduled callbacks; there is no parallel thread of
// execution, so event time is the only ordering authority.
package sim

import (
	"container/heap"
	"time"
)

type event struct {
	at  time.Time
	seq uint64 // submission order, breaks equal-time ties
	fn  func()
}

type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].at.Equal(q[j].at) {
		return q[i].seq < q[j].seq
	}
	return q[i].at.Before(q[j].at)
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) { *q = append(*q, x.(*event)) }

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return ev
}

// Engine is a priority-ordered event queue over simulated time. Callbacks due
// at the same instant execute in FIFO submission order, which makes runs with
// a fixed random seed reproducible.
type Engine struct {
	now   time.Time
	seq   uint64
	queue eventQueue
}

func NewEngine(start time.Time) *Engine {
	e := &Engine{now: start}
	heap.Init(&e.queue)
	return e
}

// Now returns the current simulated time.
func (e *Engine) Now() time.Time { return e.now }

// Pending returns the number of events still queued.
func (e *Engine) Pending() int { return len(e.queue) }

// Schedule enqueues fn to fire delayMin simulated minutes from now.
// A non-positive delay fires at the current instant, after callbacks already
// queued for it.
func (e *Engine) Schedule(delayMin int, fn func()) {
	if delayMin < 0 {
		delayMin = 0
	}
	e.ScheduleAt(e.now.Add(time.Duration(delayMin)*time.Minute), fn)
}

// ScheduleAt enqueues fn to fire at the given simulated instant.
func (e *Engine) ScheduleAt(at time.Time, fn func()) {
	if at.Before(e.now) {
		at = e.now
	}
	e.seq++
	heap.Push(&e.queue, &event{at: at, seq: e.seq, fn: fn})
}

// Every schedules fn on a fixed periodic tick starting one interval from now.
// The tick chain runs until the horizon cuts it off.
func (e *Engine) Every(intervalMin int, fn func()) {
	var tick func()
	tick = func() {
		fn()
		e.Schedule(intervalMin, tick)
	}
	e.Schedule(intervalMin, tick)
}

// Run pops and executes events in due order, advancing the clock to each
// event's time, until the queue is empty or the next event is due at or past
// the horizon. Events beyond the horizon stay queued; the clock lands on the
// horizon so teardown observations see a consistent final time.
func (e *Engine) Run(until time.Time) {
	for len(e.queue) > 0 {
		next := e.queue[0]
		if !next.at.Before(until) {
			e.now = until
			return
		}
		heap.Pop(&e.queue)
		e.now = next.at
		next.fn()
	}
	if e.now.Before(until) {
		e.now = until
	}
}
