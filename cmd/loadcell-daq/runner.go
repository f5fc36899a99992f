package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tetragramaton/loadcell-daq/internal/acquire"
	"github.com/tetragramaton/loadcell-daq/internal/export"
)

// Handle runs the acquisition session: it opens the transducer, starts
// sampling and serves operator commands from stdin until quit or SIGINT.
// A bare Enter stops the session, like putting the pen down on a bench log.
func (h *MainHandler) Handle() error {
	if err := h.Transport.Open(); err != nil {
		return fmt.Errorf("open transducer: %w", err)
	}
	defer func() {
		if err := h.Transport.Close(); err != nil {
			h.Log.Error("transducer close: %v", err)
		}
	}()

	h.Sampler.SetNotify(h.publish)

	if err := h.Sampler.Start(); err != nil {
		return err
	}
	fmt.Println("sampling; commands: zero, snapshot, stop, start, quit (Enter to finish)")

	lines := make(chan string)
	go func() {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			lines <- strings.TrimSpace(sc.Text())
		}
		close(lines)
	}()

	terminate := make(chan os.Signal, 1)
	signal.Notify(terminate, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-terminate:
			fmt.Println()
			return h.shutdown()
		case line, ok := <-lines:
			if !ok {
				return h.shutdown()
			}
			if quit := h.Dispatch(line); quit {
				return h.shutdown()
			}
		}
	}
}

// Dispatch executes one operator command. It returns true when the
// session should end.
func (h *MainHandler) Dispatch(line string) bool {
	switch strings.ToLower(line) {
	case "", "quit", "exit":
		return true
	case "start":
		switch err := h.Sampler.Start(); {
		case err == nil:
			fmt.Println("sampling started")
		case errors.Is(err, acquire.ErrAlreadyRunning):
			fmt.Println("already running")
		default:
			fmt.Printf("start: %v\n", err)
		}
	case "stop":
		switch err := h.Sampler.Stop(); {
		case err == nil:
			fmt.Printf("stopped; %d samples recorded\n", len(h.Sampler.Snapshot()))
		case errors.Is(err, acquire.ErrNotRunning):
			fmt.Println("not running")
		default:
			fmt.Printf("stop: %v\n", err)
		}
	case "zero":
		if err := h.Sampler.ManualZero(); err != nil {
			fmt.Printf("zero: %v\n", err)
			h.Log.Error("manual zero: %v", err)
		} else {
			fmt.Println("zero point set")
		}
	case "snapshot":
		snap := h.Sampler.Snapshot()
		if len(snap) == 0 {
			fmt.Println("no samples yet")
			break
		}
		last := snap[len(snap)-1]
		fmt.Printf("%d samples; last %8.2f s  %8.2f kg\n", len(snap), last.Elapsed, last.Value)
	default:
		fmt.Printf("unknown command %q\n", line)
	}
	return false
}

func (h *MainHandler) publish(s acquire.Sample) {
	for _, out := range h.Outputs {
		if err := out.Publish([]acquire.Sample{s}); err != nil {
			h.Log.Error("publish sample: %v", err)
		}
	}
}

func (h *MainHandler) shutdown() error {
	if h.Sampler.Running() {
		if err := h.Sampler.Stop(); err != nil {
			h.Log.Error("stop sampler: %v", err)
		}
	}

	snap := h.Sampler.Snapshot()
	fmt.Printf("session finished; %d samples recorded\n", len(snap))

	if h.Cfg.CSVPath != "" && len(snap) > 0 {
		if err := export.WriteCSVFile(h.Cfg.CSVPath, snap); err != nil {
			h.Log.Error("csv export: %v", err)
			fmt.Printf("csv export: %v\n", err)
		} else {
			fmt.Printf("wrote %s\n", h.Cfg.CSVPath)
		}
	}

	for _, out := range h.Outputs {
		if err := out.Close(); err != nil {
			h.Log.Error("output close: %v", err)
		}
	}
	return nil
}
