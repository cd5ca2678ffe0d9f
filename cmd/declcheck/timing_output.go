package main

import (
	"fmt"
	"io"
	"time"

	"declcheck/internal/driver"
	"declcheck/internal/observ"
	"declcheck/internal/pipeline"
)

// printTimings writes per-stage totals over all results, then the per-file
// phase table collected by timer.
func printTimings(out io.Writer, results []*driver.Result, timer *observ.Timer) {
	if out == nil {
		return
	}
	var timings pipeline.Timings
	for _, res := range results {
		if res == nil {
			continue
		}
		for _, o := range res.Outcomes {
			if o.Elapsed > 0 {
				timings.Add(o.Stage, o.Elapsed)
			}
		}
	}
	for _, stage := range pipeline.Analysis {
		if !timings.Has(stage) {
			continue
		}
		fmt.Fprintf(out, "%s %.3f ms (%d files)\n", stage, toMillis(timings.Duration(stage)), timings.Count(stage))
	}
	if timings.Has(pipeline.StageLexical) || timings.Has(pipeline.StageSyntax) || timings.Has(pipeline.StageSemantic) {
		total := timings.Sum(pipeline.Analysis...)
		fmt.Fprintf(out, "analysis %.3f ms\n", toMillis(total))
	}
	if timer != nil {
		fmt.Fprint(out, timer.Summary())
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
