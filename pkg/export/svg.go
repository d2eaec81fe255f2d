package export

import (
	"context"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/avetori/flownote/pkg/core"
	"github.com/avetori/flownote/pkg/diagram"
)

const (
	canvasMargin  = 40
	subNodeWidth  = 150
	subNodeHeight = 44
	arrowHeadSize = 7
)

const (
	styleTerminator = "fill:#d5e8d4;stroke:#2d6a4f;stroke-width:1.5"
	styleProcess    = "fill:#dae8fc;stroke:#1d4e89;stroke-width:1.5"
	styleDecision   = "fill:#ffe6cc;stroke:#b9770e;stroke-width:1.5"
	styleSubprocess = "fill:#e1d5e7;stroke:#6c3483;stroke-width:1.5"
	styleSubNode    = "fill:#fff2cc;stroke:#8d6e00;stroke-width:1.2"
	styleArrow      = "stroke:#444444;stroke-width:1.5;fill:none"
	styleArrowHead  = "fill:#444444"

	styleLabel        = "text-anchor:middle;font-size:13px;font-family:Helvetica,Arial,sans-serif"
	styleArrowLabel   = "text-anchor:middle;font-size:11px;font-family:Helvetica,Arial,sans-serif;fill:#666666"
	styleBadge        = "text-anchor:middle;font-size:11px;font-family:Helvetica,Arial,sans-serif;fill:#1d4e89"
	styleBadgeOverdue = "text-anchor:middle;font-size:11px;font-family:Helvetica,Arial,sans-serif;fill:#c0392b;font-weight:bold"
)

// WriteSVG draws one diagram, its annotations and its sub-node chains.
// Sub-nodes still at the unplaced sentinel get their initial position here:
// rendering is the moment "not yet placed" becomes a real coordinate.
func WriteSVG(ctx context.Context, w io.Writer, d diagram.Diagram, svc *core.Service) error {
	for _, n := range d.Nodes {
		if n.AllowSubNodes {
			svc.ResolvePlacement(ctx, d.NodeKey(n.ID),
				n.Pos.X+n.Size.W+60, n.Pos.Y, diagram.SubNodeSpacing)
		}
	}

	width, height := canvasBounds(d, svc)
	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()

	for _, a := range d.Arrows {
		drawArrow(canvas, d, a)
	}
	for _, n := range d.Nodes {
		drawNode(canvas, d, n, svc)
	}
	for _, n := range d.Nodes {
		if n.AllowSubNodes {
			drawSubNodes(canvas, d, n, svc)
		}
	}
	return nil
}

// canvasBounds computes the drawing extent from nodes and placed sub-nodes.
func canvasBounds(d diagram.Diagram, svc *core.Service) (int, int) {
	var maxX, maxY float64
	for _, n := range d.Nodes {
		maxX = math.Max(maxX, n.Pos.X+n.Size.W)
		maxY = math.Max(maxY, n.Pos.Y+n.Size.H)
		for _, sub := range svc.SubNodes(d.NodeKey(n.ID)) {
			maxX = math.Max(maxX, sub.X+subNodeWidth)
			maxY = math.Max(maxY, sub.Y+subNodeHeight)
		}
	}
	for _, a := range d.Arrows {
		for _, p := range a.Waypoints {
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	return round(maxX) + canvasMargin, round(maxY) + canvasMargin
}

func drawNode(canvas *svg.SVG, d diagram.Diagram, n diagram.Node, svc *core.Service) {
	x, y := round(n.Pos.X), round(n.Pos.Y)
	wd, ht := round(n.Size.W), round(n.Size.H)

	switch n.Shape {
	case diagram.ShapeTerminator:
		canvas.Roundrect(x, y, wd, ht, ht/2, ht/2, styleTerminator)
	case diagram.ShapeDecision:
		canvas.Polygon(
			[]int{x + wd/2, x + wd, x + wd/2, x},
			[]int{y, y + ht/2, y + ht, y + ht/2},
			styleDecision)
	case diagram.ShapeSubprocess:
		canvas.Rect(x, y, wd, ht, styleSubprocess)
		canvas.Line(x+6, y, x+6, y+ht, "stroke:#6c3483;stroke-width:1")
		canvas.Line(x+wd-6, y, x+wd-6, y+ht, "stroke:#6c3483;stroke-width:1")
	default:
		canvas.Rect(x, y, wd, ht, styleProcess)
	}

	canvas.Text(x+wd/2, y+ht/2+4, n.Label, styleLabel)

	key := d.NodeKey(n.ID)
	if badge := badgeText(svc, key); badge != "" {
		style := styleBadge
		if svc.Overdue(svc.Annotation(key).Deadline) {
			style = styleBadgeOverdue
		}
		canvas.Text(x+wd/2, y+ht+14, badge, style)
	}
}

// badgeText summarizes a node's annotation for display under the shape.
func badgeText(svc *core.Service, key string) string {
	rec := svc.Annotation(key)
	if rec.Empty() {
		return ""
	}
	switch {
	case rec.Deadline != "" && rec.Notes != "":
		return fmt.Sprintf("due %s ✎", rec.Deadline)
	case rec.Deadline != "":
		return "due " + rec.Deadline
	default:
		return "✎"
	}
}

func drawSubNodes(canvas *svg.SVG, d diagram.Diagram, n diagram.Node, svc *core.Service) {
	key := d.NodeKey(n.ID)
	subs := svc.SubNodes(key)
	if len(subs) == 0 {
		return
	}

	// Connect the parent to the first sub-node, then each sub-node to the
	// next; insertion order is display order.
	prevX := round(n.Pos.X + n.Size.W)
	prevY := round(n.Pos.Y + n.Size.H/2)
	for _, sub := range subs {
		x, y := round(sub.X), round(sub.Y)
		canvas.Line(prevX, prevY, x, y+subNodeHeight/2, styleArrow)
		drawArrowHead(canvas, prevX, prevY, x, y+subNodeHeight/2)

		canvas.Roundrect(x, y, subNodeWidth, subNodeHeight, 6, 6, styleSubNode)
		canvas.Text(x+subNodeWidth/2, y+subNodeHeight/2+4, sub.Label, styleLabel)

		subKey := core.SubKey(key, sub.ID)
		if badge := badgeText(svc, subKey); badge != "" {
			style := styleBadge
			if svc.Overdue(svc.Annotation(subKey).Deadline) {
				style = styleBadgeOverdue
			}
			canvas.Text(x+subNodeWidth/2, y+subNodeHeight+12, badge, style)
		}

		prevX = x + subNodeWidth/2
		prevY = y + subNodeHeight
	}
}

func drawArrow(canvas *svg.SVG, d diagram.Diagram, a diagram.Arrow) {
	from, ok := d.Find(a.From)
	if !ok {
		return
	}
	to, ok := d.Find(a.To)
	if !ok {
		return
	}

	xs := []int{round(from.Pos.X + from.Size.W/2)}
	ys := []int{round(from.Pos.Y + from.Size.H/2)}
	for _, p := range a.Waypoints {
		xs = append(xs, round(p.X))
		ys = append(ys, round(p.Y))
	}
	xs = append(xs, round(to.Pos.X+to.Size.W/2))
	ys = append(ys, round(to.Pos.Y+to.Size.H/2))

	canvas.Polyline(xs, ys, styleArrow)

	last := len(xs) - 1
	drawArrowHead(canvas, xs[last-1], ys[last-1], xs[last], ys[last])

	if a.Label != "" {
		canvas.Text((xs[0]+xs[1])/2+12, (ys[0]+ys[1])/2, a.Label, styleArrowLabel)
	}
}

// drawArrowHead draws a small triangle at (x2,y2) pointing away from (x1,y1).
func drawArrowHead(canvas *svg.SVG, x1, y1, x2, y2 int) {
	angle := math.Atan2(float64(y2-y1), float64(x2-x1))
	left := angle + math.Pi - 0.5
	right := angle + math.Pi + 0.5

	canvas.Polygon(
		[]int{x2, x2 + round(arrowHeadSize*2*math.Cos(left)), x2 + round(arrowHeadSize*2*math.Cos(right))},
		[]int{y2, y2 + round(arrowHeadSize*2*math.Sin(left)), y2 + round(arrowHeadSize*2*math.Sin(right))},
		styleArrowHead)
}

func round(f float64) int {
	return int(math.Round(f))
}
