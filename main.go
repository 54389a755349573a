package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/arbor/internal/config"
	"github.com/llehouerou/arbor/internal/errmsg"
	"github.com/llehouerou/arbor/internal/explorer"
	"github.com/llehouerou/arbor/internal/icons"
	"github.com/llehouerou/arbor/internal/state"
)

type model struct {
	explorer explorer.Model
	stateMgr *state.Manager // nil when remember_path is disabled
}

func initialModel() (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, err
	}

	icons.Init(cfg.Icons)

	var stateMgr *state.Manager
	if cfg.ShouldRememberPath() {
		stateMgr, err = state.Open()
		if err != nil {
			return model{}, err
		}
	}

	// Start path priority: CLI argument > saved state > config > cwd.
	var startPath, savedSelection string
	switch {
	case len(os.Args) > 1:
		startPath = os.Args[1]
	default:
		if stateMgr != nil {
			if nav, err := stateMgr.GetNavigation(); err == nil && nav != nil {
				if _, statErr := os.Stat(nav.Root); statErr == nil {
					startPath = nav.Root
					savedSelection = nav.SelectedPath
				}
			}
		}
		if startPath == "" {
			startPath = cfg.DefaultFolder
		}
	}
	if startPath == "" {
		startPath, err = os.Getwd()
		if err != nil {
			closeState(stateMgr)
			return model{}, err
		}
	}

	exp, err := explorer.New(startPath, explorer.FSLister{ShowHidden: cfg.ShowHidden})
	if err != nil {
		closeState(stateMgr)
		return model{}, err
	}

	if savedSelection != "" {
		exp.SelectPath(savedSelection)
	}

	return model{explorer: exp, stateMgr: stateMgr}, nil
}

func closeState(stateMgr *state.Manager) {
	if stateMgr != nil {
		stateMgr.Close()
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(explorer.NavigationChangedMsg); ok {
		if m.stateMgr != nil {
			m.stateMgr.SaveNavigation(state.Navigation{
				Root:         msg.Root,
				SelectedPath: msg.SelectedPath,
			})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.explorer, cmd = m.explorer.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.explorer.View()
}

func main() {
	m, err := initialModel()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	closeState(m.stateMgr)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpRunUI, err))
		os.Exit(1)
	}

	if fm, ok := final.(model); ok {
		if err := fm.explorer.Err(); err != nil {
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpListDir, err))
			os.Exit(1)
		}
	}
}
