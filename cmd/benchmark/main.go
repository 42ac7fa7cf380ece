package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/vyredo/xdom/signals"
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkPropagate(true)
	benchmarkBatchedWrites(true)
}

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Panic(err)
	}
	return v
}

// benchmarkPropagate writes one source signal at the root of a w*h grid of
// chained computeds, each column capped by an effect, and measures the
// full propagation pass.
func benchmarkPropagate(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Propagate")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rs := signals.NewReactiveSystem(func(from signals.SignalAware, err error) {
				log.Panic(err)
			})
			src := signals.Signal(rs, 1)
			for i := 0; i < w; i++ {
				last := signals.Computed(rs, func(oldValue int) (int, error) {
					return src.Value() + 1, nil
				})
				for j := 1; j < h; j++ {
					prev := last
					last = signals.Computed(rs, func(oldValue int) (int, error) {
						v, err := prev.Value()
						return v + 1, err
					})
				}

				must(signals.Effect(rs, func() error {
					_, err := last.Value()
					return err
				}))
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				if err := src.SetValue(src.Peek() + 1); err != nil {
					log.Panic(err)
				}
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkBatchedWrites measures coalescing: many writes to independent
// sources inside one batch, observed by one effect.
func benchmarkBatchedWrites(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Batched Writes")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		rs := signals.NewReactiveSystem(func(from signals.SignalAware, err error) {
			log.Panic(err)
		})
		srcs := make([]*signals.WriteableSignal[int], w)
		for i := range srcs {
			srcs[i] = signals.Signal(rs, i)
		}
		sum := signals.Computed(rs, func(oldValue int) (int, error) {
			total := 0
			for _, s := range srcs {
				total += s.Value()
			}
			return total, nil
		})
		must(signals.Effect(rs, func() error {
			_, err := sum.Value()
			return err
		}))

		for i := 0; i < iters; i++ {
			start := time.Now()
			err := rs.Batch(func() {
				for _, s := range srcs {
					_ = s.SetValue(s.Peek() + 1)
				}
			})
			if err != nil {
				log.Panic(err)
			}
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("batched writes: %d sources", w),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
