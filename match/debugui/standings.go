package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockroyale/match"
)

// StandingRow is one line of the standings table.
type StandingRow struct {
	ID      int
	Place   string
	Name    string
	Score   int
	Lines   int
	Sent    int
	Pending int
	KOs     int
	Status  string
}

// StandingRows flattens m's standings for display. Survivors show "-" as their place
// until the match is decided.
func StandingRows(m *match.Match) []StandingRow {
	standings := m.Standings()
	rows := make([]StandingRow, 0, len(standings))
	for _, c := range standings {
		stats := c.Stats()
		row := StandingRow{
			ID:      c.ID(),
			Place:   "-",
			Name:    c.Name(),
			Score:   c.Engine().Score(),
			Lines:   stats.LinesCleared,
			Sent:    stats.LinesSent,
			Pending: c.PendingLines(),
			KOs:     stats.KOs,
			Status:  "alive",
		}
		if c.Rank() > 0 {
			row.Place = fmt.Sprintf("#%d", c.Rank())
		}
		switch {
		case c.Rank() == 1:
			row.Status = "winner"
		case !c.Alive():
			row.Status = "out"
		}
		rows = append(rows, row)
	}
	return rows
}

// StandingsWindow lists competitors and lets one be selected for inspection.
type StandingsWindow struct {
	match    *match.Match
	selected int
}

func NewStandingsWindow(m *match.Match) *StandingsWindow {
	return &StandingsWindow{match: m}
}

// Selected returns the id of the selected competitor, or 0.
func (w *StandingsWindow) Selected() int { return w.selected }

func (w *StandingsWindow) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(460, 300), imgui.CondOnce)
	if !imgui.BeginV("Standings", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	m := w.match
	imgui.Text(fmt.Sprintf("Alive: %d / %d", m.Roster().AliveCount(), m.Roster().Len()))
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("Tick %d (%.1fs)", m.Tick(), m.Elapsed().Seconds()))
	if winner, ok := m.Winner(); ok {
		imgui.Text(fmt.Sprintf("Winner: %s", winner.Name()))
	}
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("StandingsTable", 8, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Place")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Score")
		imgui.TableSetupColumn("Lines")
		imgui.TableSetupColumn("Sent")
		imgui.TableSetupColumn("Pending")
		imgui.TableSetupColumn("KOs")
		imgui.TableSetupColumn("Status")
		imgui.TableHeadersRow()

		for _, row := range StandingRows(m) {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%s##%d", row.Place, row.ID), w.selected == row.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				w.selected = row.ID
			}
			imgui.TableNextColumn()
			imgui.Text(row.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Score))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Lines))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Sent))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Pending))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.KOs))
			imgui.TableNextColumn()
			imgui.Text(row.Status)
		}

		imgui.EndTable()
	}

	imgui.End()
}
