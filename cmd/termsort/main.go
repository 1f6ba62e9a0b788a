// Command termsort animates an in-place sort of a random array in the terminal.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lixenwraith/termsort/core"
)

// exitError ends the process with code after its message has been printed
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	os.Exit(execute(os.Args[1:]))
}

func execute(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Error. %v\n", err)
	return 1
}
