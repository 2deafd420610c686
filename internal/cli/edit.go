package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Aayushjha0128/GraphSense/pkg/builder"
	"github.com/Aayushjha0128/GraphSense/pkg/geom"
	"github.com/Aayushjha0128/GraphSense/pkg/snapshot"
)

// Editor styles
var (
	editStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	editDirtyStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	editEdgeStyle   = lipgloss.NewStyle().Foreground(colorDim)

	// Terminal approximations of the four palette slots.
	editVertexStyles = map[int]lipgloss.Style{
		1: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		2: lipgloss.NewStyle().Foreground(lipgloss.Color("80")),
		3: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		4: lipgloss.NewStyle().Foreground(lipgloss.Color("216")),
	}
)

// editorChromeRows is the number of non-canvas rows in the editor view:
// title, key hints, a separator, and the status bar.
const editorChromeRows = 4

// editCommand creates the edit command, an interactive terminal editor
// for growing and inspecting a graph file.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit a graph interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := graphFileArg(args)
			b, err := c.loadGraph(path)
			if err != nil {
				return err
			}

			m := newEditorModel(c, path, b)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			finalModel, err := p.Run()
			if err != nil {
				return err
			}

			fm, ok := finalModel.(editorModel)
			if ok && fm.dirty {
				printWarning("unsaved changes discarded (use 'w' to write before quitting)")
			}
			return nil
		},
	}
}

// =============================================================================
// editorModel - Interactive graph editing
// =============================================================================

// editorModel is the bubbletea model for the graph editor. The builder is
// shared across updates through its pointer; view state (zoom, pan, view
// mode) lives in the model value.
type editorModel struct {
	cli  *CLI
	path string
	b    *builder.Builder

	cols int
	rows int

	zoom      float64
	center    geom.Point // world point shown at the canvas center
	indexView bool
	maxID     int // hide vertices above this ID, 0 shows all

	dirty  bool
	status string
}

// newEditorModel creates an editor centered on the graph, or on the seed
// triangle position for an empty one.
func newEditorModel(c *CLI, path string, b *builder.Builder) editorModel {
	m := editorModel{
		cli:    c,
		path:   path,
		b:      b,
		cols:   80,
		rows:   24,
		zoom:   1.0,
		center: geom.Point{X: c.cfg.Render.Width / 2, Y: c.cfg.Render.Height / 2},
	}
	if bounds, ok := b.Graph().Bounds(); ok {
		m.center = bounds.Center()
	}
	return m
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
	}
	return m, nil
}

func (m editorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "r":
		id, err := m.b.AddRandomVertex()
		if err != nil {
			m.status = StyleWarning.Render(fmt.Sprintf("insert failed: %v", err))
			return m, nil
		}
		m.dirty = true
		m.status = fmt.Sprintf("inserted vertex %d", id)

	case "s":
		m.b.StartTriangle()
		m.dirty = true
		m.maxID = 0
		m.status = "reset to seed triangle"
		if bounds, ok := m.b.Graph().Bounds(); ok {
			m.center = bounds.Center()
		}

	case "c":
		w, h := m.cli.cfg.Render.Width, m.cli.cfg.Render.Height
		bounds := geom.Rect{
			Min: geom.Point{X: 100, Y: 100},
			Max: geom.Point{X: w - 100, Y: h - 100},
		}
		m.b.Engine().FitToBounds(m.b.Graph(), bounds)
		m.dirty = true
		m.center = geom.Point{X: w / 2, Y: h / 2}
		m.status = fmt.Sprintf("centered into %.0fx%.0f", w, h)

	case "t":
		m.indexView = !m.indexView

	case "g":
		m.maxID = lowerThreshold(m.maxID, m.b.Graph().NextID())
	case "G":
		m.maxID = raiseThreshold(m.maxID, m.b.Graph().NextID())

	case "+", "=":
		m.zoom = min(m.zoom*m.cli.cfg.Render.ZoomFactor, m.cli.cfg.Render.MaxZoom)
	case "-":
		m.zoom = max(m.zoom/m.cli.cfg.Render.ZoomFactor, m.cli.cfg.Render.MinZoom)

	case "up":
		m.center.Y -= m.panStep()
	case "down":
		m.center.Y += m.panStep()
	case "left":
		m.center.X -= m.panStep()
	case "right":
		m.center.X += m.panStep()

	case "w":
		if err := snapshot.WriteFile(m.b.Graph(), m.path); err != nil {
			m.status = StyleWarning.Render(fmt.Sprintf("write failed: %v", err))
			return m, nil
		}
		m.dirty = false
		m.status = fmt.Sprintf("wrote %s", m.path)
	}
	return m, nil
}

// lowerThreshold steps the hide threshold down. From "show all" the first
// step hides the newest vertex; the floor is 1.
func lowerThreshold(maxID, nextID int) int {
	highest := nextID - 1
	if maxID == 0 {
		return max(highest-1, 1)
	}
	return max(maxID-1, 1)
}

// raiseThreshold steps the hide threshold up, returning to "show all"
// once it covers every existing ID.
func raiseThreshold(maxID, nextID int) int {
	if maxID == 0 {
		return 0
	}
	if maxID+1 >= nextID-1 {
		return 0
	}
	return maxID + 1
}

// panStep returns the world-unit distance one arrow press moves the view.
// It shrinks as the view zooms in.
func (m editorModel) panStep() float64 {
	return 40 / m.zoom
}

// =============================================================================
// View
// =============================================================================

func (m editorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("GraphSense") + " " + StyleDim.Render(m.path))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("r insert  s reset  c center  t view  g/G hide  +/- zoom  arrows pan  w write  q quit"))
	b.WriteString("\n")

	b.WriteString(m.renderCanvas())

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// canvasSize returns the drawable cell grid dimensions.
func (m editorModel) canvasSize() (int, int) {
	w := m.cols
	h := m.rows - editorChromeRows
	if w < 10 {
		w = 10
	}
	if h < 5 {
		h = 5
	}
	return w, h
}

// scale returns columns per world unit. Rows cover twice the world
// distance of columns, matching the roughly 1:2 cell aspect of terminals.
func (m editorModel) scale() float64 {
	w, h := m.canvasSize()
	kx := float64(w-2) / m.cli.cfg.Render.Width
	ky := 2 * float64(h-1) / m.cli.cfg.Render.Height
	return min(kx, ky) * m.zoom
}

// project maps a world point to a cell position on a w-by-h grid.
func (m editorModel) project(p geom.Point, w, h int) (int, int) {
	k := m.scale()
	col := w/2 + int(math.Round((p.X-m.center.X)*k))
	row := h/2 + int(math.Round((p.Y-m.center.Y)*k/2))
	return col, row
}

// renderCanvas rasterizes the graph into a character grid: edges first as
// dim dots, then vertex glyphs on top.
func (m editorModel) renderCanvas() string {
	w, h := m.canvasSize()
	cells := make([][]rune, h)
	colors := make([][]int, h)
	for y := range cells {
		cells[y] = make([]rune, w)
		colors[y] = make([]int, w)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}

	g := m.b.Graph()
	for _, e := range g.Edges() {
		if !m.visible(e.V1) || !m.visible(e.V2) {
			continue
		}
		v1, ok1 := g.Vertex(e.V1)
		v2, ok2 := g.Vertex(e.V2)
		if !ok1 || !ok2 {
			continue
		}
		x0, y0 := m.project(v1.Pos, w, h)
		x1, y1 := m.project(v2.Pos, w, h)
		drawLine(cells, x0, y0, x1, y1)
	}

	for _, v := range g.Vertices() {
		if !m.visible(v.ID) {
			continue
		}
		x, y := m.project(v.Pos, w, h)
		if m.indexView {
			drawText(cells, colors, x, y, fmt.Sprintf("%d", v.ID), v.Color)
		} else {
			drawCell(cells, colors, x, y, '●', v.Color)
		}
	}

	var b strings.Builder
	for y := range cells {
		for x := range cells[y] {
			r := cells[y][x]
			switch {
			case r == ' ':
				b.WriteRune(' ')
			case colors[y][x] > 0:
				b.WriteString(vertexStyle(colors[y][x]).Render(string(r)))
			default:
				b.WriteString(editEdgeStyle.Render(string(r)))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m editorModel) visible(id int) bool {
	return m.maxID == 0 || id <= m.maxID
}

func vertexStyle(slot int) lipgloss.Style {
	if s, ok := editVertexStyles[slot]; ok {
		return s
	}
	return StyleValue
}

// drawLine plots dim dots along the segment. Endpoints are included; the
// vertex glyphs drawn afterwards cover them.
func drawLine(cells [][]rune, x0, y0, x1, y1 int) {
	steps := max(absInt(x1-x0), absInt(y1-y0))
	if steps == 0 {
		plotRune(cells, x0, y0, '·')
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(float64(x0) + t*float64(x1-x0)))
		y := int(math.Round(float64(y0) + t*float64(y1-y0)))
		plotRune(cells, x, y, '·')
	}
}

// drawText writes s horizontally starting at (x, y), clipped to the grid.
func drawText(cells [][]rune, colors [][]int, x, y int, s string, slot int) {
	for i, r := range s {
		drawCell(cells, colors, x+i, y, r, slot)
	}
}

func drawCell(cells [][]rune, colors [][]int, x, y int, r rune, slot int) {
	if y < 0 || y >= len(cells) || x < 0 || x >= len(cells[y]) {
		return
	}
	cells[y][x] = r
	colors[y][x] = slot
}

func plotRune(cells [][]rune, x, y int, r rune) {
	if y < 0 || y >= len(cells) || x < 0 || x >= len(cells[y]) {
		return
	}
	if cells[y][x] == ' ' {
		cells[y][x] = r
	}
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// renderStatusBar builds the bottom line: graph size, zoom, view mode,
// hide threshold, save state, and the last transient message.
func (m editorModel) renderStatusBar() string {
	g := m.b.Graph()

	view := viewColor
	if m.indexView {
		view = viewIndex
	}
	ids := "all IDs"
	if m.maxID > 0 {
		ids = fmt.Sprintf("IDs ≤ %d", m.maxID)
	}

	parts := []string{
		fmt.Sprintf("%d vertices", g.VertexCount()),
		fmt.Sprintf("%d edges", g.EdgeCount()),
		fmt.Sprintf("zoom %.1fx", m.zoom),
		"view " + view,
		ids,
	}
	line := editStatusStyle.Render(strings.Join(parts, " · "))
	if m.dirty {
		line += " " + editDirtyStyle.Render("[modified]")
	}
	if m.status != "" {
		line += "  " + StyleDim.Render(m.status)
	}
	return line
}
