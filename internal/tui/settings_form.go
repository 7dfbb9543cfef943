package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-git-save/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var settingLabels = map[models.SettingKey]string{
	models.SettingLocalPath: "Local path",
	models.SettingRemoteURL: "Remote URL",
	models.SettingUser:      "User",
	models.SettingPassword:  "Password",
}

var settingPlaceholders = map[models.SettingKey]string{
	models.SettingLocalPath: "/home/deck/saves/game",
	models.SettingRemoteURL: "https://git.example.com/saves.git",
	models.SettingUser:      "deck",
	models.SettingPassword:  "token or password",
}

// settingsForm edits the git settings of one game. Inputs follow
// models.SettingKeys order.
type settingsForm struct {
	entityID string
	inputs   []textinput.Model
	focus    int
	loaded   bool
}

func newSettingsForm(entityID string) settingsForm {
	inputs := make([]textinput.Model, len(models.SettingKeys))
	for i, key := range models.SettingKeys {
		in := textinput.New()
		in.Prompt = "> "
		in.Placeholder = settingPlaceholders[key]
		in.CharLimit = 512
		in.Width = 48
		if key == models.SettingPassword {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		inputs[i] = in
	}
	inputs[0].Focus()

	return settingsForm{entityID: entityID, inputs: inputs}
}

func (f *settingsForm) fill(s models.EntitySettings) {
	for i, key := range models.SettingKeys {
		f.inputs[i].SetValue(s.Get(key))
		f.inputs[i].CursorEnd()
	}
	f.loaded = true
}

func (f *settingsForm) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update forwards msg to the focused input and reports the edited key when
// its value changed.
func (f *settingsForm) update(msg tea.Msg) (models.SettingKey, string, bool, tea.Cmd) {
	before := f.inputs[f.focus].Value()

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)

	after := f.inputs[f.focus].Value()
	if after == before {
		return "", "", false, cmd
	}
	return models.SettingKeys[f.focus], after, true, cmd
}

func (f settingsForm) view(pending int) string {
	if !f.loaded {
		return renderPage(fmt.Sprintf("CONFIGURE GAME %s", f.entityID), "Loading settings...", "esc: back")
	}

	var b strings.Builder
	for i, key := range models.SettingKeys {
		label := settingLabels[key]
		if i == f.focus {
			label = titleStyle.Render(label)
		}
		b.WriteString(label + "\n")
		b.WriteString(f.inputs[i].View() + "\n\n")
	}
	if pending > 0 {
		b.WriteString(helpStyle.Render(fmt.Sprintf("saving %d change(s)...", pending)))
	} else {
		b.WriteString(helpStyle.Render("all changes saved"))
	}

	return renderPage(
		fmt.Sprintf("CONFIGURE GAME %s", f.entityID),
		b.String(),
		"tab/shift+tab: next/prev field • esc: save and back",
	)
}
