package ui

import (
	"github.com/five82/chased/internal/cart"
	"github.com/five82/chased/internal/viewer"
)

// cartDisplay receives cart renders and keeps what the header badges and
// the cart modal draw. Each location keeps its own count so a view can
// never show a number the cart did not push.
type cartDisplay struct {
	badges [2]int
	lines  []cart.Line
	total  string
}

func (d *cartDisplay) RenderBadge(loc cart.Location, count int) {
	if int(loc) < 0 || int(loc) >= len(d.badges) {
		return
	}
	d.badges[loc] = count
}

func (d *cartDisplay) RenderCartList(lines []cart.Line, total string) {
	d.lines = lines
	d.total = total
}

// Badge returns the count last rendered at loc.
func (d *cartDisplay) Badge(loc cart.Location) int {
	if int(loc) < 0 || int(loc) >= len(d.badges) {
		return 0
	}
	return d.badges[loc]
}

// viewerDisplay mirrors the viewer's last pushed state for View.
type viewerDisplay struct {
	open      bool
	subject   viewer.Subject
	transform viewer.Transform
	renders   int
}

func (d *viewerDisplay) RenderTransform(zoom, rotationDegrees float64) {
	d.transform = viewer.Transform{Zoom: zoom, Rotation: rotationDegrees}
	d.renders++
}

func (d *viewerDisplay) OpenSubject(s viewer.Subject) {
	d.open = true
	d.subject = s
}

func (d *viewerDisplay) CloseViewer() {
	d.open = false
}
