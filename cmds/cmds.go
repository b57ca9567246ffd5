/*
Package cmds implements the command abstraction of the CLI: a command
validates itself first and executes only after that. The commands are
decoupled from the cobra layer so that other Go programs can run them
as well.
*/
package cmds

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lainio/err2/try"
)

var ErrInvalid = errors.New("invalid command, check arguments")

// Result is the machine readable result of an executed command.
type Result interface {
	JSON() ([]byte, error)
}

// Command is the CLI command interface. Validate must pass before
// Exec is called.
type Command interface {
	Validate() error
	Exec(w io.Writer) (r Result, err error)
}

// ParseLoggingArgs parses glog startup flags from a single string
// like "-logtostderr=true -v=2".
func ParseLoggingArgs(s string) {
	args := make([]string, 1, 12)
	args[0] = os.Args[0]
	args = append(args, strings.Split(s, " ")...)
	orgArgs := os.Args
	os.Args = args
	flag.Parse()
	os.Args = orgArgs
}

// Fprintln is fmt.Fprintln but it allows writer to be nil. Note! it
// throws an error.
func Fprintln(w io.Writer, a ...interface{}) {
	if w != nil {
		try.To1(fmt.Fprintln(w, a...))
	}
}

// Fprintf is fmt.Fprintf but it allows writer to be nil. Note! it
// throws an error.
func Fprintf(w io.Writer, format string, a ...interface{}) {
	if w != nil {
		try.To1(fmt.Fprintf(w, format, a...))
	}
}
