package term

import (
	"fmt"
	"io"
	"sync"
)

// Notifier prints notices to a terminal. The loading line is redrawn in place
// and erased when hidden.
type Notifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewNotifier creates a notifier writing to out
func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

func (n *Notifier) Loading(text string) func() {
	n.mu.Lock()
	fmt.Fprint(n.out, infoStyle.Render("… "+text))
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			fmt.Fprint(n.out, "\r\x1b[2K")
		})
	}
}

func (n *Notifier) Success(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, successStyle.Render("✓ "+text))
}

func (n *Notifier) Error(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, errorStyle.Render("✗ "+text))
}
