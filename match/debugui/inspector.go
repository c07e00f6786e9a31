package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockroyale/match"
)

// Inspector shows the live state of one competitor.
type Inspector struct {
	match *match.Match
}

func NewInspector(m *match.Match) *Inspector {
	return &Inspector{match: m}
}

func (in *Inspector) Render(id int) {
	imgui.SetNextWindowPosV(imgui.NewVec2(480, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 420), imgui.CondOnce)
	if !imgui.BeginV("Competitor Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	c, ok := in.match.Roster().Get(id)
	if !ok {
		imgui.Text("No competitor selected")
		imgui.End()
		return
	}

	e := c.Engine()
	imgui.Text(fmt.Sprintf("%s (id %d)", c.Name(), c.ID()))
	imgui.Text(fmt.Sprintf("Score %d  Level %d  Lines %d  Combo %d", e.Score(), e.Level(), e.Lines(), e.Combo()))
	if cur, ok := e.Current(); ok {
		imgui.Text(fmt.Sprintf("Current: %s rot %d at (%d,%d), ghost row %d", cur.Type, cur.Rotation, cur.X, cur.Y, e.GhostY()))
	}
	imgui.Text(fmt.Sprintf("Next: %v", e.Preview(3)))
	if held, ok := e.Held(); ok {
		imgui.Text(fmt.Sprintf("Held: %s", held))
	}
	imgui.Text(fmt.Sprintf("Pending garbage: %d", c.PendingLines()))
	imgui.Separator()

	if imgui.TreeNodeStr("Stats") {
		renderStruct(reflect.ValueOf(c.Stats()))
		imgui.TreePop()
	}
	if ai, ok := c.(*match.AI); ok {
		if imgui.TreeNodeStr("Controller") {
			ctl := ai.Controller()
			imgui.Text(fmt.Sprintf("Next decision in %s", ctl.Remaining()))
			renderStruct(reflect.ValueOf(ctl.Stats()))
			imgui.TreePop()
		}
		if imgui.TreeNodeStr("Profile") {
			renderStruct(reflect.ValueOf(ai.Controller().Profile()))
			imgui.TreePop()
		}
	}

	imgui.End()
}

func renderStruct(val reflect.Value) {
	for _, f := range Fields(val.Type()) {
		field := val.Field(f.Index)
		if f.IsStruct {
			if imgui.TreeNodeStr(f.Name) {
				renderStruct(field)
				imgui.TreePop()
			}
			continue
		}
		imgui.Text(fmt.Sprintf("%s: %v", f.Name, field.Interface()))
	}
}
