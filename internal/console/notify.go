package console

import (
	"context"
	"sync"
)

// NoticeKind classifies a recorded notice
type NoticeKind int

const (
	NoticeLoading NoticeKind = iota
	NoticeHidden
	NoticeSuccess
	NoticeError
)

// Notice is one piece of feedback shown to the operator
type Notice struct {
	Kind NoticeKind
	Text string
}

// Recorder is a Notifier that keeps notices in order. Front ends that cannot
// draw from a worker goroutine drain it after the action completes.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) add(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *Recorder) Loading(text string) func() {
	r.add(Notice{Kind: NoticeLoading, Text: text})
	var once sync.Once
	return func() {
		once.Do(func() { r.add(Notice{Kind: NoticeHidden, Text: text}) })
	}
}

func (r *Recorder) Success(text string) { r.add(Notice{Kind: NoticeSuccess, Text: text}) }

func (r *Recorder) Error(text string) { r.add(Notice{Kind: NoticeError, Text: text}) }

// Notices returns everything recorded so far
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Drain returns and forgets everything recorded so far
func (r *Recorder) Drain() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.notices
	r.notices = nil
	return out
}

// Answer is a Confirmer that always gives the same answer
type Answer bool

func (a Answer) Confirm(context.Context, Prompt) (bool, error) {
	return bool(a), nil
}
