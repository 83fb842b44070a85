package main

import (
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Players    int
	Workers    int
	Animations int

	// Results
	TotalTicks      int64
	TotalMilestones int64
	TotalTime       time.Duration
	TickTime        Stats
	GCPauseMetrics  bool
	MemStatsStart   runtime.MemStats
	MemStatsEnd     runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# anim-stress report

## Configuration
- **Run Duration:** {{.Duration}}
- **Players:** {{.Players}}
- **Workers:** {{.Workers}}
- **Distinct Animations:** {{.Animations}}

## Playback
- **Ticks:** {{.TotalTicks}}
- **Milestones Crossed:** {{.TotalMilestones}}
- **Elapsed:** {{.TotalTime}}
- **Advance Time per Tick (all players):** avg {{.TickTime.Avg}}, min {{.TickTime.Min}}, max {{.TickTime.Max}}

## Memory (bytes)
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} -> {{.MemStatsEnd.HeapAlloc}} (delta {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}})
- Total Alloc: {{.MemStatsStart.TotalAlloc}} -> {{.MemStatsEnd.TotalAlloc}} (delta {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}})
- Sys Memory:  {{.MemStatsStart.Sys}} -> {{.MemStatsEnd.Sys}} (delta {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}})
- GC Cycles:   {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pauses
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
