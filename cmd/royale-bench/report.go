package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockroyale/match"
)

type Report struct {
	// Configuration
	Timeout   time.Duration
	Tick      time.Duration
	AIs       int
	Opponents string

	// Results
	Matches       []MatchResult
	TotalTime     time.Duration
	TickTime      Stats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type MatchResult struct {
	ID        string
	Seed      uint64
	Finished  bool
	Winner    string
	Ticks     int64
	Simulated time.Duration
	WallTime  time.Duration
	Decisions int64
	Deferred  int64
	Standings []Standing
	Systems   []match.SystemStats
}

type Standing struct {
	Rank   int
	Name   string
	Score  int
	Pieces int
	Stats  match.Stats
}

func newMatchResult(m *match.Match, wall time.Duration) MatchResult {
	r := MatchResult{
		ID:        m.ID().String(),
		Seed:      m.Seed(),
		Finished:  m.Over(),
		Ticks:     m.Tick(),
		Simulated: m.Elapsed(),
		WallTime:  wall,
		Decisions: m.AI().Decisions,
		Deferred:  m.AI().Deferred,
		Systems:   m.Scheduler().GetStats().Systems,
	}
	if winner, ok := m.Winner(); ok {
		r.Winner = winner.Name()
	}
	for _, c := range m.Standings() {
		r.Standings = append(r.Standings, Standing{
			Rank:   c.Rank(),
			Name:   c.Name(),
			Score:  c.Engine().Score(),
			Pieces: c.Engine().PieceCount(),
			Stats:  c.Stats(),
		})
	}
	return r
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
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Royale Benchmark Report

## Configuration
- **Timeout:** {{.Timeout}}
- **Simulated Tick:** {{.Tick}}
- **AIs per Match:** {{.AIs}}
- **Difficulty Mix:** {{.Opponents}}

## Totals
- **Matches Played:** {{len .Matches}}
- **Total Time:** {{.TotalTime}}
- **Tick Time:** avg {{.TickTime.Avg}}, min {{.TickTime.Min}}, max {{.TickTime.Max}} over {{len .TickTime.Samples}} ticks
- **Heap Alloc:** {{.MemStatsStart.HeapAlloc}} -> {{.MemStatsEnd.HeapAlloc}} (delta {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}})
- **Num GC:** {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{range $i, $m := .Matches}}
## Match {{inc $i}} ({{$m.ID}})
- **Seed:** {{$m.Seed}}
- **Result:** {{if $m.Finished}}{{if $m.Winner}}won by {{$m.Winner}}{{else}}no survivor{{end}}{{else}}timed out{{end}}
- **Ticks:** {{$m.Ticks}} ({{$m.Simulated}} simulated, {{$m.WallTime}} wall)
- **AI Decisions:** {{$m.Decisions}} ({{$m.Deferred}} deferred)

| Rank | Name | Score | Pieces | Lines | Sent | Received | Cancelled | KOs | Max Combo | Quads |
|---|---|---|---|---|---|---|---|---|---|---|
{{- range $m.Standings}}
| {{rank .Rank}} | {{.Name}} | {{.Score}} | {{.Pieces}} | {{.Stats.LinesCleared}} | {{.Stats.LinesSent}} | {{.Stats.LinesReceived}} | {{.Stats.LinesCancelled}} | {{.Stats.KOs}} | {{.Stats.MaxCombo}} | {{.Stats.Quads}} |
{{- end}}

| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{- range $m.Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"inc": func(i int) int {
			return i + 1
		},
		"rank": func(rank int) string {
			if rank == 0 {
				return "-"
			}
			return fmt.Sprintf("#%d", rank)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
