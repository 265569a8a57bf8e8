// Command gridpath paints grid boards and animates A* searches across them.
//
// Usage:
//
//	gridpath run --scenario maze.yaml --delay 20ms
//	gridpath run --size 30 --density 0.3 --seed 7
//	gridpath edit --size 25
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	root, a := newRootCmd()
	if err := execute(context.Background(), root, a); err != nil {
		var ec exitCodeError
		if errors.As(err, &ec) {
			os.Exit(ec.code)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// exitCodeError carries a non-zero exit status for an outcome that is not a
// failure of the tool itself, such as an unreachable end.
type exitCodeError struct {
	code int
	msg  string
}

func (e exitCodeError) Error() string { return e.msg }
