package cli

import (
	"fmt"
	"io"
)

// ConsoleNotifier renders session notices on the terminal. The notices are
// informational only; command flow continues at the prompt, which is the
// terminal equivalent of dismissing an alert.
type ConsoleNotifier struct {
	out io.Writer
}

func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

func (n *ConsoleNotifier) Notify(title, message string) {
	fmt.Fprintf(n.out, "\n[%s] %s\n", title, message)
}
