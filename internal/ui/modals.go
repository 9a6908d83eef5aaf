package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/chased/internal/account"
	"github.com/five82/chased/internal/logtail"
)

// modalSize returns the outer size used for centred modals.
func (m *Model) modalSize() (int, int) {
	w := min(max(m.width-4, 20), 84)
	h := max(m.height-6, 8)
	return w, h
}

// renderModal draws the active modal centred over the body area.
func (m *Model) renderModal(height int) string {
	w, _ := m.modalSize()
	var title, content string
	switch m.modal {
	case modalCart:
		title, content = "Your Cart", m.renderCartModal(w-4)
	case modalSell:
		title, content = "Sell", m.renderSellModal()
	case modalViewer:
		title, content = m.viewerView.subject.Name, m.renderViewerModal(w-4, height-4)
	case modalHelp:
		title, content = "Keyboard Shortcuts", m.renderHelpModal(w-4)
	case modalContact:
		title, content = "Contact Support", m.renderContactModal(w-4)
	case modalActivity:
		title, content = "Activity", m.activity.View()
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		BorderBackground(lipgloss.Color(m.theme.Background)).
		Background(lipgloss.Color(m.theme.FocusBg)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Padding(0, 1).
		Width(w - 2)

	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	heading := styles.AccentText.Bold(true).Render(truncate(title, w-4))
	content = lipgloss.NewStyle().MaxWidth(w - 4).Render(clipLines(content, height-4))
	rendered := box.Render(heading + "\n\n" + content)

	return lipgloss.Place(
		m.width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		rendered,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
}

func (m *Model) renderCartModal(width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)

	if len(m.cartView.lines) == 0 {
		return bg.Render("Your cart is empty.", styles.MutedText) + "\n\n" +
			bg.Render("Total:", styles.MutedText) + bg.Space() + bg.Render(m.cartView.total, styles.Text.Bold(true)) + "\n\n" +
			bg.Render("esc close", styles.FaintText)
	}

	priceWidth := 10
	nameWidth := max(8, width-priceWidth-4)
	var b strings.Builder
	for i, line := range m.cartView.lines {
		row := padRight(truncate(line.Name, nameWidth), nameWidth) + "  " + padRight(truncate(line.PriceText, priceWidth), priceWidth)
		if i == m.cartIdx {
			b.WriteString(styles.Selected.Render("› " + row))
		} else {
			b.WriteString(bg.Render("  "+row, styles.Text))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(bg.Render("Total:", styles.MutedText) + bg.Space() + bg.Render(m.cartView.total, styles.Text.Bold(true)))
	b.WriteString("\n\n")
	b.WriteString(bg.Render("j/k select · x remove · enter checkout · esc close", styles.FaintText))
	return b.String()
}

func (m *Model) renderSellModal() string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	lines := make([]string, 0, len(sellOptions)+2)
	for i, opt := range sellOptions {
		if i == m.sellIdx {
			lines = append(lines, styles.Selected.Render("› "+opt+" "))
			continue
		}
		lines = append(lines, bg.Render("  "+opt, styles.Text))
	}
	lines = append(lines, "", bg.Render("enter open · esc close", styles.FaintText))
	return strings.Join(lines, "\n")
}

func (m *Model) renderViewerModal(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	subject := m.viewerView.subject
	t := m.viewerView.transform

	rows := max(4, height-6)
	image := m.preview.Render(subject.ImageRef, t, width, rows)

	info := bg.Render(subject.PriceText, styles.InfoText) + bg.Spaces(3) +
		bg.Render(fmt.Sprintf("Zoom %d%%", int(math.Round(t.Zoom*100))), styles.Text) + bg.Spaces(2) +
		bg.Render(fmt.Sprintf("Rotation %g°", t.Rendered()), styles.Text)
	if m.viewer.Sweeping() {
		info += bg.Spaces(2) + bg.Render("spinning…", styles.WarningText)
	}
	controls := bg.Render("+/- zoom · wheel zoom · 0 reset · [/] rotate · r 360° · esc close", styles.FaintText)
	return image + "\n\n" + info + "\n" + controls
}

func (m *Model) renderHelpModal(width int) string {
	titles := []string{"Sections", "Browsing", "Cart", "Image viewer", "General"}
	var b strings.Builder
	for i, group := range m.keys.FullHelp() {
		if i < len(titles) {
			fmt.Fprintf(&b, "**%s**  ", titles[i])
		}
		entries := make([]string, 0, len(group))
		for _, binding := range group {
			h := binding.Help()
			entries = append(entries, fmt.Sprintf("`%s` %s", h.Key, h.Desc))
		}
		b.WriteString(strings.Join(entries, " · "))
		b.WriteString("\n\n")
	}
	return m.markdown.Render(b.String(), width, m.theme.Dark)
}

const contactIntro = `**Need a hand?** Our support team answers every message within one
business day. Tell us about your order, a listing, or anything else.`

func (m *Model) renderContactModal(width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)

	labels := []string{"Name", "Email", "Message"}
	lines := []string{m.markdown.Render(contactIntro, width, m.theme.Dark), ""}
	for i := range m.contactInput {
		labelStyle := styles.MutedText
		if i == m.contactFocus {
			labelStyle = styles.AccentText
		}
		lines = append(lines, bg.Render(padRight(labels[i], 9), labelStyle)+bg.Space()+m.contactInput[i].View())
	}

	buttonStyle := styles.AccentText.Bold(true)
	if m.contact.Sending() {
		buttonStyle = styles.FaintText
	}
	lines = append(lines, "", bg.Render("[ "+m.contact.ButtonLabel()+" ]", buttonStyle))
	if m.contactNote != "" {
		noteStyle := styles.WarningText
		if m.contactNote == account.ContactThanks {
			noteStyle = styles.SuccessText
		}
		lines = append(lines, "", bg.Render(m.contactNote, noteStyle))
	}
	lines = append(lines, "", bg.Render("tab next field · enter send · esc close", styles.FaintText))
	return strings.Join(lines, "\n")
}

// formatActivity renders parsed log entries, one per line.
func (m *Model) formatActivity(entries []logtail.Entry) string {
	styles := m.theme.Styles()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		ts := "--:--:--"
		if !e.Time.IsZero() {
			ts = e.Time.Local().Format("15:04:05")
		}
		var levelStyle lipgloss.Style
		switch e.Level {
		case "ERROR", "DPANIC", "PANIC", "FATAL":
			levelStyle = styles.DangerText
		case "WARN":
			levelStyle = styles.WarningText
		case "DEBUG":
			levelStyle = styles.FaintText
		default:
			levelStyle = styles.InfoText
		}
		line := styles.MutedText.Render(ts) + " " + levelStyle.Render(padRight(e.Level, 5)) + " " + styles.Text.Render(e.Message)
		if fields := e.FieldString(); fields != "" {
			line += " " + styles.FaintText.Render(fields)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
