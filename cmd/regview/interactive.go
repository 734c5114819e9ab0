package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hexwire/regkit/addrmap"
	"github.com/hexwire/regkit/bitfield"
	"github.com/hexwire/regkit/codec"
	"github.com/hexwire/regkit/layout"
	"github.com/hexwire/regkit/register"
	"github.com/hexwire/regkit/regset"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	regStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	cursorStyle = lipgloss.NewStyle().
			Reverse(true)

	setBitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	set       *regset.Set
	filename  string
	cfg       viewConfig
	regs      []register.RegisterDef
	input     textinput.Model
	status    string
	selected  int
	cursor    int
	fieldIdx  int
	prevState modelState
	state     modelState
}

type modelState int

const (
	stateSelectReg modelState = iota
	stateViewReg
	stateEditRaw
	stateEditField
	stateViewMap
)

func newInteractiveModel(set *regset.Set, filename string, cfg viewConfig) *interactiveModel {
	return &interactiveModel{
		set:      set,
		filename: filename,
		cfg:      cfg,
		regs:     set.Registers(),
		state:    stateSelectReg,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) current() *register.RegisterDef {
	if m.selected < 0 || m.selected >= len(m.regs) {
		return nil
	}
	return &m.regs[m.selected]
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	editing := m.state == stateEditRaw || m.state == stateEditField

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q":
		if !editing {
			return m, tea.Quit
		}

	case "up", "k":
		if !editing {
			if m.state == stateSelectReg && m.selected > 0 {
				m.selected--
			} else if m.state == stateViewReg && m.fieldIdx > 0 {
				m.fieldIdx--
			}
		}

	case "down", "j":
		if !editing {
			if m.state == stateSelectReg && m.selected < len(m.regs)-1 {
				m.selected++
			} else if m.state == stateViewReg {
				if cur := m.current(); cur != nil && m.fieldIdx < len(cur.Fields)-1 {
					m.fieldIdx++
				}
			}
		}

	case "K":
		if m.state == stateSelectReg {
			m.moveSelected(-1)
		}

	case "J":
		if m.state == stateSelectReg {
			m.moveSelected(1)
		}

	case "left", "h":
		if !editing && m.state == stateViewReg {
			if cur := m.current(); cur != nil && m.cursor < cur.Width-1 {
				m.cursor++
			}
		}

	case "right", "l":
		if !editing && m.state == stateViewReg && m.cursor > 0 {
			m.cursor--
		}

	case " ":
		if m.state == stateViewReg {
			if cur := m.current(); cur != nil {
				m.set.ToggleBit(cur.ID, m.cursor)
			}
		}

	case "r":
		if m.state == stateViewReg {
			m.startRawEdit()
		}

	case "m":
		if m.state == stateSelectReg || m.state == stateViewReg {
			m.prevState = m.state
			m.state = stateViewMap
		}

	case "g":
		if m.state == stateViewMap {
			m.cfg.showGaps = !m.cfg.showGaps
		}

	case "enter":
		switch m.state {
		case stateSelectReg:
			if cur := m.current(); cur != nil {
				m.cursor = cur.Width - 1
				m.fieldIdx = 0
				m.status = ""
				m.state = stateViewReg
			}
		case stateViewReg:
			m.startFieldEdit()
		case stateEditRaw:
			m.commitRawEdit()
		case stateEditField:
			m.commitFieldEdit()
		}

	case "esc":
		switch m.state {
		case stateViewReg:
			m.status = ""
			m.state = stateSelectReg
		case stateEditRaw, stateEditField:
			m.status = ""
			m.state = stateViewReg
		case stateViewMap:
			m.state = m.prevState
		}
	}

	if m.state == stateEditRaw || m.state == stateEditField {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) moveSelected(delta int) {
	cur := m.current()
	if cur == nil {
		return
	}
	if err := m.set.Move(cur.ID, delta); err != nil {
		return
	}
	m.regs = m.set.Registers()
	m.selected = min(max(m.selected+delta, 0), len(m.regs)-1)
}

func (m *interactiveModel) startRawEdit() {
	cur := m.current()
	if cur == nil {
		return
	}
	ti := textinput.New()
	ti.Prompt = "raw: "
	ti.Placeholder = hexValue(m.set.Value(cur.ID), cur.Width)
	ti.Width = 40
	ti.Focus()
	m.input = ti
	m.status = ""
	m.state = stateEditRaw
}

func (m *interactiveModel) startFieldEdit() {
	cur := m.current()
	if cur == nil || m.fieldIdx >= len(cur.Fields) {
		return
	}
	f := &cur.Fields[m.fieldIdx]
	ti := textinput.New()
	ti.Prompt = f.Name + ": "
	ti.Placeholder = editHint(f)
	ti.Width = 40
	ti.Focus()
	m.input = ti
	m.status = ""
	m.state = stateEditField
}

// editHint suggests an input shape per field kind.
func editHint(f *register.FieldDef) string {
	switch f.Kind {
	case register.KindFlag:
		return "true / false / 1 / 0"
	case register.KindEnum:
		var names []string
		for _, e := range f.Enum {
			names = append(names, e.Name)
			if len(names) == 3 {
				break
			}
		}
		if len(names) == 0 {
			return "value"
		}
		return strings.Join(names, " / ")
	case register.KindFloat, register.KindFixed:
		return "1.5 / -0.25 / 2e-3"
	default:
		return "0x1F / 0b1010 / 42"
	}
}

func (m *interactiveModel) commitRawEdit() {
	cur := m.current()
	if cur == nil {
		return
	}
	v, ok := codec.ParseInt(m.input.Value())
	if !ok {
		m.status = fmt.Sprintf("not an integer literal: %q", m.input.Value())
		return
	}
	m.set.SetValue(cur.ID, v)
	m.status = ""
	m.state = stateViewReg
}

func (m *interactiveModel) commitFieldEdit() {
	cur := m.current()
	if cur == nil || m.fieldIdx >= len(cur.Fields) {
		return
	}
	f := &cur.Fields[m.fieldIdx]
	text := m.input.Value()
	if !acceptsFieldInput(f, text) {
		m.status = fmt.Sprintf("bad %s value: %q", f.Kind, text)
		return
	}
	m.set.ApplyField(cur.ID, f.ID, text)
	m.status = ""
	m.state = stateViewReg
}

// acceptsFieldInput applies the per-kind literal rules up front, so typos
// surface as a status line instead of the codec's zero fallback.
func acceptsFieldInput(f *register.FieldDef, s string) bool {
	switch f.Kind {
	case register.KindInt:
		return codec.IsIntLiteral(s)
	case register.KindFloat, register.KindFixed:
		return codec.IsFloatLiteral(s)
	case register.KindEnum:
		for _, e := range f.Enum {
			if e.Name == s {
				return true
			}
		}
		return codec.IsIntLiteral(s)
	case register.KindFlag:
		switch strings.TrimSpace(s) {
		case "true", "false":
			return true
		}
		return codec.IsFloatLiteral(s)
	default:
		return false
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Register Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectReg:
		m.viewSelect(&b)
	case stateViewReg, stateEditRaw, stateEditField:
		m.viewRegister(&b)
	case stateViewMap:
		m.viewMap(&b)
	}

	return b.String()
}

func (m *interactiveModel) viewSelect(b *strings.Builder) {
	b.WriteString("Select a register:\n\n")
	for i := range m.regs {
		r := &m.regs[i]
		line := fmt.Sprintf("%-16s %4d bits  = %s", r.Name, r.Width, hexValue(m.set.Value(r.ID), r.Width))
		if n := len(m.set.Report(r.ID).Warnings); n > 0 {
			line += fmt.Sprintf("  (%d warnings)", n)
		}
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • J/K reorder • enter inspect • m map • q quit"))
}

func (m *interactiveModel) viewRegister(b *strings.Builder) {
	cur := m.current()
	if cur == nil {
		b.WriteString("no register selected")
		return
	}
	raw := m.set.Value(cur.ID)

	b.WriteString(regStyle.Render(cur.Name))
	fmt.Fprintf(b, "  %d bits  = %s\n\n", cur.Width, hexValue(raw, cur.Width))

	m.viewGrid(b, cur, raw)
	m.viewFields(b, cur, raw)

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.status))
	}

	b.WriteString("\n")
	switch m.state {
	case stateEditRaw, stateEditField:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter apply • esc cancel"))
	default:
		b.WriteString(helpStyle.Render("←/→ bit • space toggle • ↑/↓ field • enter edit • r raw • m map • esc back"))
	}
}

// viewGrid draws the bit grid with the cursor bit reversed and set bits
// tinted.
func (m *interactiveModel) viewGrid(b *strings.Builder, def *register.RegisterDef, raw *big.Int) {
	bitsPerRow := layout.BitsPerRow(m.cfg.container, def.Width, m.cfg.cell, m.cfg.gap)
	for _, row := range layout.Rows(def.Width, bitsPerRow) {
		var idx, val strings.Builder
		bit := row.High
		for _, tr := range layout.Tracks(row.Bits()) {
			if tr == layout.TrackGap {
				idx.WriteString(strings.Repeat(" ", gapText))
				val.WriteString(strings.Repeat(" ", gapText))
				continue
			}
			fmt.Fprintf(&idx, "%*d ", cellText-1, bit)
			cell := fmt.Sprintf("%*d ", cellText-1, bitfield.Get(raw, bit))
			switch {
			case bit == m.cursor:
				cell = cursorStyle.Render(cell)
			case bitfield.Get(raw, bit) == 1:
				cell = setBitStyle.Render(cell)
			}
			val.WriteString(cell)
			bit--
		}
		b.WriteString(idx.String())
		b.WriteString("\n")
		b.WriteString(val.String())
		b.WriteString("\n")
		if ruler := renderRuler(def.Fields, row); strings.TrimSpace(ruler) != "" {
			b.WriteString(typeStyle.Render(ruler))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}

func (m *interactiveModel) viewFields(b *strings.Builder, def *register.RegisterDef, raw *big.Int) {
	if len(def.Fields) == 0 {
		b.WriteString(helpStyle.Render("  (no fields)"))
		b.WriteString("\n")
		return
	}
	nameW, typeW := 0, 0
	for i := range def.Fields {
		f := &def.Fields[i]
		nameW = max(nameW, len(f.Name))
		typeW = max(typeW, len(f.TypeLabel()))
	}
	for i := range def.Fields {
		f := &def.Fields[i]
		line := fmt.Sprintf("%-*s  %-7s  %-*s  = %s",
			nameW, f.Name, rangeLabel(f), typeW, f.TypeLabel(),
			codec.Decode(raw, *f).String())
		switch {
		case i == m.fieldIdx:
			b.WriteString(selectedStyle.Render("> " + line))
		case f.Covers(m.cursor):
			b.WriteString("  " + regStyle.Render(line))
		default:
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
}

func (m *interactiveModel) viewMap(b *strings.Builder) {
	geo := m.set.Options()
	opts := addrmap.Options{
		UnitBits:     geo.UnitBits,
		UnitsPerBand: geo.UnitsPerBand,
		ShowGaps:     m.cfg.showGaps,
	}
	fmt.Fprintf(b, "Address map  (%d-bit units, %d per band)\n\n", opts.UnitBits, opts.UnitsPerBand)
	b.WriteString(renderMap(addrmap.Build(m.set.Registers(), opts), opts))
	if ovs := m.set.Overlaps(); len(ovs) > 0 {
		b.WriteString("\n")
		for _, ov := range ovs {
			b.WriteString(errorStyle.Render(fmt.Sprintf("overlap: %s and %s share units [%d, %d]",
				ov.A.Name, ov.B.Name, ov.FirstUnit, ov.LastUnit)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("g toggle empty bands • esc back • q quit"))
}

func runInteractive(defPath string, cfg viewConfig) error {
	defs, err := loadDefs(defPath)
	if err != nil {
		return err
	}
	set, err := regset.New(defs, regset.Options{UnitBits: cfg.unitBits, UnitsPerBand: cfg.bandUnits})
	if err != nil {
		return fmt.Errorf("load definitions: %w", err)
	}

	p := tea.NewProgram(newInteractiveModel(set, defPath, cfg), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
