package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/internal/service"
	"github.com/MKhiriev/go-git-save/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenPanel screen = iota
	screenSettings
	screenBuildInfo
)

const statusTimeout = 2 * time.Second

type modelDeps struct {
	state       service.StateObserver
	settings    SettingsEditor
	coordinator service.SyncCoordinator
	stateFeed   *latest[models.SyncState]
	toasts      *ToastSink
	running     *RunningFeed
	build       models.AppBuildInfo
	copyFn      func(string) error
	logger      *logger.Logger
}

type appModel struct {
	ctx  context.Context
	deps modelDeps

	screen screen
	width  int
	height int

	state   models.SyncState
	running string

	spinner    spinner.Model
	requested  bool
	lastResult string
	status     string

	toasts      []toast
	nextToastID int

	form settingsForm
}

func newAppModel(ctx context.Context, deps modelDeps) appModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return appModel{
		ctx:     ctx,
		deps:    deps,
		screen:  screenPanel,
		state:   deps.state.Get(),
		running: deps.running.Current(),
		spinner: sp,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.listenState(),
		m.listenRunning(),
		m.listenToasts(),
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case stateChangedMsg:
		m.state = msg.state
		return m, m.listenState()

	case runningChangedMsg:
		m.running = msg.entityID
		return m, m.listenRunning()

	case toastMsg:
		m.nextToastID++
		id := m.nextToastID
		m.toasts = append(m.toasts, toast{id: id, notification: msg.notification})
		expire := tea.Tick(toastDuration(msg.notification), func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		})
		return m, tea.Batch(m.listenToasts(), expire)

	case toastExpiredMsg:
		for i, t := range m.toasts {
			if t.id == msg.id {
				m.toasts = append(m.toasts[:i:i], m.toasts[i+1:]...)
				break
			}
		}
		return m, nil

	case syncDoneMsg:
		m.requested = false
		m.lastResult = resultLabel(msg.job, msg.err)
		return m, nil

	case settingsLoadedMsg:
		if m.screen == screenSettings && m.form.entityID == msg.entityID {
			m.form.fill(msg.settings)
		}
		return m, nil

	case settingsFlushedMsg:
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied to clipboard"
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQ) {
			return m, tea.Quit
		}
		switch m.screen {
		case screenSettings:
			return m.updateSettings(msg)
		case screenBuildInfo:
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.screen = screenPanel
			}
			return m, nil
		default:
			return m.updatePanel(msg)
		}
	}

	if m.screen == screenSettings {
		var cmd tea.Cmd
		_, _, _, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.screen {
	case screenSettings:
		body = m.form.view(m.deps.settings.Pending())
	case screenBuildInfo:
		body = renderBuildInfoWindow(m.deps.build)
	default:
		body = m.panelView()
	}

	if toasts := renderToasts(m.toasts); toasts != "" {
		body += "\n\n" + toasts
	}
	return appStyle.Render(body)
}

func (m appModel) syncing() bool {
	return m.state.Syncing || m.requested
}

func (m appModel) updatePanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.toggleExit):
		return m.toggle(models.StateSyncOnGameExit)

	case key.Matches(msg, keys.toggleToast):
		if !m.state.SyncOnGameExit {
			return m, nil
		}
		return m.toggle(models.StateToastAutoSync)

	case key.Matches(msg, keys.toggleEntry):
		return m.toggle(models.StateSyncOnGameEntry)

	case key.Matches(msg, keys.configure):
		if m.running == "" {
			return m, nil
		}
		m.form = newSettingsForm(m.running)
		m.screen = screenSettings
		return m, m.cmdLoadSettings(m.running)

	case key.Matches(msg, keys.syncNow):
		if m.running == "" || m.syncing() {
			return m, nil
		}
		if m.deps.coordinator.Busy(m.running) {
			m.status = "A sync is already running"
			return m, cmdClearStatus()
		}
		m.requested = true
		return m, m.cmdSyncNow(m.running)

	case key.Matches(msg, keys.copyResult):
		if m.lastResult == "" {
			return m, nil
		}
		return m, m.cmdCopy(m.lastResult)

	case key.Matches(msg, keys.buildInfo):
		m.screen = screenBuildInfo
		return m, nil
	}
	return m, nil
}

func (m appModel) toggle(k models.StateKey) (tea.Model, tea.Cmd) {
	current, _ := m.state.Value(k)
	if err := m.deps.state.Set(k, !current, true); err != nil {
		m.status = err.Error()
		return m, cmdClearStatus()
	}
	m.state = m.deps.state.Get()
	return m, nil
}

func (m appModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenPanel
		return m, m.cmdFlushSettings()
	case !m.form.loaded:
		return m, nil
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
		m.form.move(1)
		return m, nil
	case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
		m.form.move(-1)
		return m, nil
	}

	settingKey, value, changed, cmd := m.form.update(msg)
	if changed {
		if err := m.deps.settings.Set(m.ctx, m.form.entityID, settingKey, value, false); err != nil {
			m.deps.logger.Error().Err(err).Str("key", string(settingKey)).Msg("failed to store setting")
		}
	}
	return m, cmd
}

func (m appModel) listenState() tea.Cmd {
	return listen(m.ctx, m.deps.stateFeed.ch, func(s models.SyncState) tea.Msg {
		return stateChangedMsg{state: s}
	})
}

func (m appModel) listenRunning() tea.Cmd {
	return listen(m.ctx, m.deps.running.updates.ch, func(id string) tea.Msg {
		return runningChangedMsg{entityID: id}
	})
}

func (m appModel) listenToasts() tea.Cmd {
	return listen(m.ctx, m.deps.toasts.updates(), func(n models.Notification) tea.Msg {
		return toastMsg{notification: n}
	})
}

func (m appModel) cmdSyncNow(entityID string) tea.Cmd {
	ctx, coordinator := m.ctx, m.deps.coordinator
	return func() tea.Msg {
		job, err := coordinator.RequestSync(ctx, entityID, service.SyncOptions{Toast: true, ToastSkips: true})
		return syncDoneMsg{job: job, err: err}
	}
}

func (m appModel) cmdLoadSettings(entityID string) tea.Cmd {
	ctx, settings := m.ctx, m.deps.settings
	return func() tea.Msg {
		return settingsLoadedMsg{entityID: entityID, settings: settings.Load(ctx, entityID)}
	}
}

func (m appModel) cmdFlushSettings() tea.Cmd {
	ctx, settings := m.ctx, m.deps.settings
	return func() tea.Msg {
		settings.Flush(ctx)
		return settingsFlushedMsg{}
	}
}

func (m appModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.deps.copyFn
	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// resultLabel is the text of the sync button after a manual sync.
func resultLabel(job models.SyncJob, err error) string {
	switch {
	case err == nil:
		return "Sync success: " + string(job.Result)
	case errors.Is(err, service.ErrBusy):
		return "Sync failure: " + service.ErrBusy.Error()
	case job.Message != "":
		return "Sync failure: " + humanizeBackendUnavailableError(errors.New(job.Message))
	}
	return "Sync failure: " + humanizeBackendUnavailableError(err)
}
