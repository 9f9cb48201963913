package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// dialogAction names what an open dialog will do when accepted. While any
// dialog is open it captures every key, so a second structural command can
// never start before the first one resolves.
type dialogAction int

const (
	actionNone dialogAction = iota
	actionNewFolder
	actionRenameFolder
	actionDeleteOne
	actionDeleteBulk
	actionFolderColor
	actionSetImage
	actionMoveTyped
)

// dialog is the modal overlay state: either a y/n confirmation or a single
// text input, plus the identities the accepted action applies to.
type dialog struct {
	action  dialogAction
	confirm bool
	prompt  string
	input   textinput.Model

	targetID   string
	targetName string
	ids        []string
}

func newInputDialog(action dialogAction, prompt, initial string) *dialog {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.SetValue(initial)
	ti.Focus()
	ti.CursorEnd()
	return &dialog{action: action, prompt: prompt, input: ti}
}

func newConfirmDialog(action dialogAction, prompt string) *dialog {
	return &dialog{action: action, confirm: true, prompt: prompt}
}

func (d *dialog) view(width int) string {
	var body string
	if d.confirm {
		body = fmt.Sprintf("%s\n\n%s", d.prompt, helpStyle.Render("y: confirm   n/esc: cancel"))
	} else {
		body = fmt.Sprintf("%s\n%s\n\n%s", d.prompt, d.input.View(), helpStyle.Render("enter: accept   esc: cancel"))
	}
	boxWidth := width - 8
	if boxWidth > 64 {
		boxWidth = 64
	}
	if boxWidth < 24 {
		boxWidth = 24
	}
	return overlayStyle.Width(boxWidth).Render(body)
}

// previewModel is the read-only quick-look overlay over a preset body. The
// bytes are shown verbatim, scrolled by whole lines.
type previewModel struct {
	title  string
	lines  []string
	offset int
}

func newPreview(title string, body []byte) *previewModel {
	return &previewModel{title: title, lines: strings.Split(string(body), "\n")}
}

func (p *previewModel) scroll(delta, height int) {
	p.offset += delta
	maxOffset := len(p.lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.offset > maxOffset {
		p.offset = maxOffset
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

func (p *previewModel) view(width, height int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("  " + p.title))
	sb.WriteString("\n")

	end := p.offset + height
	if end > len(p.lines) {
		end = len(p.lines)
	}
	for _, line := range p.lines[p.offset:end] {
		sb.WriteString("  ")
		sb.WriteString(truncateText(line, width-4))
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render(fmt.Sprintf("  [%d-%d/%d]  j/k scroll, esc/space close", p.offset+1, end, len(p.lines))))
	return sb.String()
}
