package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/koji-m/Bluedog/internal/service"
	"github.com/koji-m/Bluedog/models"
)

const (
	pageSignIn  = "signin"
	pageFeed    = "feed"
	pagePost    = "post"
	pageProfile = "profile"
	pageCompose = "compose"
)

// page is a routed screen. Pages are pointers so their state survives
// navigation.
type page interface {
	tea.Model
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global quit, the error overlay and the build info window
// 3) handles NavigateTo messages and session transitions
// 4) delegates keys to the active page and every other message to all pages
type RootModel struct {
	sh      *shell
	pages   map[string]page
	current string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
	showError     bool
	errorText     string
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(sh *shell, pages map[string]page, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		sh:        sh,
		pages:     pages,
		current:   startPage,
		buildInfo: buildInfo,
	}
}

// Init resumes a persisted session, if any, alongside the start page.
func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{r.cmdResume()}
	if p, ok := r.pages[r.current]; ok {
		cmds = append(cmds, p.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			r.quitByUser = true
			return r, tea.Quit
		case r.showError:
			if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
				r.showError = false
				r.errorText = ""
			}
			return r, nil
		case key.Matches(keyMsg, keys.buildInfo) && r.current == pageSignIn:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case r.showBuildInfo:
			if key.Matches(keyMsg, keys.esc) {
				r.showBuildInfo = false
			}
			return r, nil
		}

		return r, r.updateCurrent(msg)
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg)

	case quitMsg:
		return r, tea.Quit

	case errorMsg:
		if isSessionError(msg.err) {
			r.sh.session = models.Session{}
			return r.navigate(NavigateTo{Page: pageSignIn, Payload: signInStatusMsg{text: humanizeError(msg.err)}})
		}
		r.showError = true
		r.errorText = humanizeError(msg.err)
		return r, nil

	case likeDoneMsg:
		if msg.err != nil {
			return r, showError(msg.err)
		}

	case sessionResumedMsg:
		if msg.err != nil {
			// No usable session yet; stay on the sign-in page.
			return r, nil
		}
		r.sh.session = msg.session
		return r.navigate(NavigateTo{Page: pageFeed, Payload: refreshFeedMsg{}})

	case signedInMsg:
		r.sh.session = msg.session
		return r.navigate(NavigateTo{Page: pageFeed, Payload: refreshFeedMsg{}})

	case signedOutMsg:
		r.sh.session = models.Session{}
		r.pages = newPages(r.sh)
		return r.navigate(NavigateTo{Page: pageSignIn})
	}

	return r, r.broadcast(msg)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.showError {
		return errorModal(r.errorText).View()
	}

	p, ok := r.pages[r.current]
	if !ok {
		return renderPage("BLUEDOG", "", "")
	}
	return p.View()
}

func (r *RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return *r, nil
	}

	r.showBuildInfo = false
	r.current = nav.Page

	if nav.Payload != nil {
		payload := nav.Payload
		return *r, func() tea.Msg { return payload }
	}
	return *r, next.Init()
}

func (r *RootModel) updateCurrent(msg tea.Msg) tea.Cmd {
	p, ok := r.pages[r.current]
	if !ok {
		return nil
	}
	updated, cmd := p.Update(msg)
	r.pages[r.current] = updated.(page)
	return cmd
}

// broadcast delivers msg to every page. Results of background commands reach
// their page even after the user navigated away.
func (r *RootModel) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.pages))
	for name, p := range r.pages {
		updated, cmd := p.Update(msg)
		r.pages[name] = updated.(page)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (r RootModel) cmdResume() tea.Cmd {
	return r.sh.do(func(ctx context.Context, b Backend) tea.Msg {
		session, err := b.Session(ctx)
		return sessionResumedMsg{session: session, err: err}
	})
}

func isSessionError(err error) bool {
	return errors.Is(err, service.ErrUnauthenticated) || errors.Is(err, service.ErrSessionExpired)
}
