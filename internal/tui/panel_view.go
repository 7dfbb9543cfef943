package tui

import (
	"strings"
)

func (m appModel) panelView() string {
	header := "Steam"
	if m.running != "" {
		header = "Game " + m.running
	}

	title := "Sync (Unavailable)"
	if m.running != "" {
		title = "Sync (Available)"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header) + "\n\n")

	b.WriteString(item("x", checkbox(m.state.SyncOnGameExit)+" Sync after closing a game", false) + "\n")
	b.WriteString(item("t", checkbox(m.state.ToastAutoSync)+" Toast after auto sync", !m.state.SyncOnGameExit) + "\n")
	b.WriteString(item("e", checkbox(m.state.SyncOnGameEntry)+" Sync when starting a game", false) + "\n\n")

	b.WriteString(item("c", "Configure Game", m.running == "") + "\n")
	b.WriteString(item("s", m.syncButtonLabel(), m.running == "" || m.syncing()) + "\n")

	if m.status != "" {
		b.WriteString("\n" + helpStyle.Render(m.status))
	}

	hotKeys := "x/t/e: toggle • c: configure • s: sync now • v: about • q: quit"
	if m.lastResult != "" {
		hotKeys = "x/t/e: toggle • c: configure • s: sync now • y: copy result • v: about • q: quit"
	}
	return renderPage(title, b.String(), hotKeys)
}

func (m appModel) syncButtonLabel() string {
	if m.syncing() {
		return m.spinner.View() + " Syncing..."
	}
	if m.lastResult != "" {
		return fitText(m.lastResult, 60)
	}
	return "Sync Now"
}
