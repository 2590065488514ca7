package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/shroud/editor"
	"github.com/iw2rmb/shroud/internal/config"
)

func newEditCmd(root *rootOptions) *cobra.Command {
	var readOnly bool

	cmd := &cobra.Command{
		Use:   "edit FILE",
		Short: "Open FILE in the privacy-masking editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := root.logger(nil)
			if err != nil {
				return err
			}
			defer closeLog()

			settings, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			text, err := os.ReadFile(args[0])
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			a := newApp(args[0], root.configPath, settings, string(text), readOnly, log)
			p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseCellMotion())

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			err = config.Watch(ctx, root.configPath, func(s config.Settings, err error) {
				if err != nil {
					log.Warn("settings reload failed", "path", root.configPath, "err", err)
					return
				}
				p.Send(settingsMsg{settings: s})
			})
			if err != nil {
				log.Warn("settings not watched", "path", root.configPath, "err", err)
			}

			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&readOnly, "read-only", false, "open without editing")
	return cmd
}

type settingsMsg struct{ settings config.Settings }

type savedMsg struct {
	what string
	err  error
}

// app hosts the editor and owns file and settings persistence.
type app struct {
	editor       editor.Model
	path         string
	settingsPath string
	settings     config.Settings
	log          *slog.Logger
}

func newApp(path, settingsPath string, s config.Settings, text string, readOnly bool, log *slog.Logger) app {
	m := editor.New(editor.Config{
		Text:         text,
		Privacy:      s.MaskConfig(),
		MaskStyle:    s.Style(),
		ShowNotices:  s.ShowNotices,
		ShowLineNums: true,
		ReadOnly:     readOnly,
		Style:        editor.DefaultStyle(),
		Logger:       log,
	})
	return app{
		editor:       m.Focus(),
		path:         path,
		settingsPath: settingsPath,
		settings:     s,
		log:          log,
	}
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.editor = a.editor.SetSize(msg.Width, msg.Height)
		return a, nil
	case settingsMsg:
		a.settings = msg.settings
		a.editor = a.editor.SetPrivacy(msg.settings.MaskConfig(), msg.settings.Style())
		a.log.Debug("settings applied", "enabled", msg.settings.Enabled)
		return a, nil
	case savedMsg:
		if msg.err != nil {
			a.log.Error("save failed", "what", msg.what, "err", msg.err)
		}
		return a, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+s":
			return a, a.saveText()
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)

	if a.editor.Enabled() != a.settings.Enabled {
		a.settings.Enabled = a.editor.Enabled()
		return a, tea.Batch(cmd, a.saveSettings())
	}
	return a, cmd
}

func (a app) View() string { return a.editor.View() }

func (a app) saveText() tea.Cmd {
	path, text := a.path, a.editor.Buffer().Text()
	return func() tea.Msg {
		return savedMsg{what: path, err: os.WriteFile(path, []byte(text), 0o644)}
	}
}

func (a app) saveSettings() tea.Cmd {
	path, s := a.settingsPath, a.settings
	return func() tea.Msg {
		return savedMsg{what: path, err: config.Save(path, s)}
	}
}
