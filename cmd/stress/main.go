package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/vyredo/xdom/signals"
)

var (
	depth      = flag.Int("depth", 1_000, "length of the computed chain")
	fanout     = flag.Int("fanout", 1_000, "number of effects on a single source")
	iterations = flag.Int("iterations", 1_000, "writes per scenario")
)

func main() {
	flag.Parse()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"scenario", "size", "writes", "updates", "updates/ms"})

	runDeepChain(table)
	runWideFanout(table)
	runWriteStorm(table)

	table.Render()
}

// runDeepChain pushes writes through a single chain of computeds and
// counts leaf recomputations.
func runDeepChain(table *tablewriter.Table) {
	rs := signals.NewReactiveSystem(func(from signals.SignalAware, err error) {
		log.Panic(err)
	})
	src := signals.Signal(rs, 0)

	updates := int64(0)
	last := signals.Computed(rs, func(oldValue int) (int, error) {
		return src.Value() + 1, nil
	})
	for i := 1; i < *depth; i++ {
		prev := last
		last = signals.Computed(rs, func(oldValue int) (int, error) {
			v, err := prev.Value()
			return v + 1, err
		})
	}
	if _, err := signals.Effect(rs, func() error {
		_, err := last.Value()
		updates++
		return err
	}); err != nil {
		log.Panic(err)
	}

	start := time.Now()
	for i := 0; i < *iterations; i++ {
		if err := src.SetValue(i + 1); err != nil {
			log.Panic(err)
		}
	}
	appendRow(table, "deep chain", fmt.Sprintf("1x%d", *depth), updates, time.Since(start))
}

// runWideFanout subscribes many effects to one source.
func runWideFanout(table *tablewriter.Table) {
	rs := signals.NewReactiveSystem(func(from signals.SignalAware, err error) {
		log.Panic(err)
	})
	src := signals.Signal(rs, 0)

	updates := int64(0)
	for i := 0; i < *fanout; i++ {
		if _, err := signals.Effect(rs, func() error {
			src.Value()
			updates++
			return nil
		}); err != nil {
			log.Panic(err)
		}
	}

	start := time.Now()
	for i := 0; i < *iterations; i++ {
		if err := src.SetValue(i + 1); err != nil {
			log.Panic(err)
		}
	}
	appendRow(table, "wide fanout", fmt.Sprintf("%dx1", *fanout), updates, time.Since(start))
}

// runWriteStorm issues re-entrant writes from inside an effect until the
// engine's iteration circuit breaker trips, verifying the limit holds
// under sustained pressure.
func runWriteStorm(table *tablewriter.Table) {
	rs := signals.NewReactiveSystem(nil)
	src := signals.Signal(rs, 0)
	relay := signals.Signal(rs, 0)

	updates := int64(0)
	if _, err := signals.Effect(rs, func() error {
		v := src.Value()
		updates++
		return relay.SetValue(v)
	}); err != nil {
		log.Panic(err)
	}
	if _, err := signals.Effect(rs, func() error {
		v := relay.Value()
		updates++
		if v > 0 {
			// ping-pong until the cycle heuristic cuts it off
			return src.SetValue(v + 1)
		}
		return nil
	}); err != nil {
		log.Panic(err)
	}

	start := time.Now()
	err := src.SetValue(1)
	if err != signals.ErrCycleDetected {
		log.Panicf("expected cycle detection, got %v", err)
	}
	appendRow(table, "write storm", "2x2", updates, time.Since(start))
}

func appendRow(table *tablewriter.Table, scenario, size string, updates int64, took time.Duration) {
	rate := float64(updates) / (float64(took) / float64(time.Millisecond))
	table.Append([]string{
		scenario,
		size,
		humanize.Comma(int64(*iterations)),
		humanize.Comma(updates),
		humanize.Comma(int64(rate)),
	})
}
