// Command juggle casts JSON values between the juggle types from the command
// line.
//
//	juggle cast int '"123.45"'        # 123
//	juggle cast --raw arr 'test'      # ["t","e","s","t"]
//	juggle castable '1.5'             # bool int str arr float
//	echo '{"a":1}' | juggle cast obj  # {"a":1}
//
// A value that cannot be cast exits with status 2; usage errors and unknown
// type names exit with status 1.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), pterm.Error.Sprintln(err))

		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}
