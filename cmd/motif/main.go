package main

import (
	"log"
	"log/slog"
	"time"
)

func main() {
	t0 := time.Now()
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("%v", err)
	}
	slog.Debug("Done", "elapsed", time.Since(t0))
}
