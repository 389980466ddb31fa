package main

import (
	"fmt"
	"io"
	"os"

	"cmakefmt/internal/observ"
)

var (
	// timer is set by --timings; nil otherwise (observ.Timer is nil-safe).
	timer    *observ.Timer
	cleanups []func(failed bool)
)

func startTimer() {
	timer = observ.NewTimer()
}

func onFinish(fn func(failed bool)) {
	cleanups = append(cleanups, fn)
}

// finish runs registered cleanups in reverse order and prints timings.
// It runs after Execute so it also covers commands that failed.
func finish(err error) {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i](err != nil)
	}
	cleanups = nil
	printTimings(os.Stderr, timer)
}

func printTimings(out io.Writer, t *observ.Timer) {
	if out == nil || t == nil || len(t.Report().Phases) == 0 {
		return
	}
	if _, err := fmt.Fprint(out, t.Summary()); err != nil {
		panic(err)
	}
}
