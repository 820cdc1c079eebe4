package main

import (
	"os"
	"runtime/pprof"
	"sync"
	"time"
)

// recordCPUProfile writes a CPU profile to path for the given duration. The
// returned stop function is safe to call early or more than once; the profile
// also stops on its own when the duration elapses.
func recordCPUProfile(path string, d time.Duration) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		})
	}
	time.AfterFunc(d, stop)
	return stop, nil
}
