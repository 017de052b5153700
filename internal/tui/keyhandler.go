package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/contesthub/contesthub/internal/config"
	"github.com/contesthub/contesthub/internal/contest"
)

type KeyHandler struct {
	app  *App
	keys config.KeyBindings
}

func NewKeyHandler(app *App, cfg *config.Config) *KeyHandler {
	return &KeyHandler{app: app, keys: cfg.Keys.Bindings}
}

func (kh *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if kh.app.view == ViewSearch && kh.app.searchInput.Focused() {
		return kh.handleSearchInputMode(msg)
	}

	// While the list's own filter prompt is open, every key belongs to it.
	if kh.app.view == ViewContests && kh.activeList().FilterState() == list.Filtering {
		return kh.delegateToCharm(msg)
	}

	if model, cmd, handled := kh.handleCustomKeys(key); handled {
		return model, cmd
	}

	return kh.delegateToCharm(msg)
}

func (kh *KeyHandler) activeList() *list.Model {
	if kh.app.bucket == BucketUpcoming {
		return &kh.app.upcomingList
	}
	return &kh.app.pastList
}

func (kh *KeyHandler) handleSearchInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return kh.navigateBack()
	case "ctrl+c":
		return kh.app, tea.Quit
	case "enter":
		if items := kh.app.searchList.Items(); len(items) > 0 {
			if i, ok := items[0].(contestItem); ok {
				return kh.app, kh.app.openURL(i.contest.Href)
			}
		}
		return kh.app, nil
	case "tab", "down":
		if len(kh.app.searchList.Items()) > 0 {
			kh.app.searchInput.Blur()
			kh.app.searchList.Select(0)
		}
		return kh.app, nil
	}

	prev := kh.app.searchInput.Value()
	newInput, cmd := kh.app.searchInput.Update(msg)
	kh.app.searchInput = newInput

	query := sanitizeSearchInput(kh.app.searchInput.Value())
	if query != prev && len(query) > 1 {
		return kh.app, tea.Batch(cmd, kh.app.performSearch(query))
	}
	return kh.app, cmd
}

func (kh *KeyHandler) handleCustomKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "ctrl+c", kh.keys.Quit:
		return kh.app, tea.Quit, true
	case kh.keys.Back:
		// In the main view esc belongs to the list so it can clear an
		// applied filter.
		if kh.app.view == ViewContests {
			return kh.app, nil, false
		}
		model, cmd := kh.navigateBack()
		return model, cmd, true
	case kh.keys.Help:
		model, cmd := kh.enterHelp()
		return model, cmd, true
	}

	switch kh.app.view {
	case ViewContests:
		return kh.handleContestsCustomKeys(key)
	default:
		return kh.app, nil, false
	}
}

func (kh *KeyHandler) handleContestsCustomKeys(key string) (tea.Model, tea.Cmd, bool) {
	app := kh.app

	switch key {
	case kh.keys.Refresh:
		return app, app.beginRefresh(), true

	case kh.keys.Search:
		model, cmd := kh.enterSearchMode()
		return model, cmd, true

	case kh.keys.SwitchBucket:
		if app.bucket == BucketUpcoming {
			app.bucket = BucketPast
		} else {
			app.bucket = BucketUpcoming
		}
		return app, nil, true

	case kh.keys.Bookmark:
		if c, ok := app.selectedContest(); ok {
			var cmd tea.Cmd
			if app.bookmarks.Toggle(c.ID) {
				cmd = app.setStatus(MsgBookmarkAdded, StatusSuccess)
			} else {
				cmd = app.setStatus(MsgBookmarkRemoved, StatusInfo)
			}
			app.rebuildLists()
			return app, cmd, true
		}
		return app, nil, true

	case kh.keys.BookmarksOnly:
		app.filter.BookmarksOnly = !app.filter.BookmarksOnly
		app.rebuildLists()
		return app, nil, true

	case kh.keys.Solution:
		if c, ok := app.selectedContest(); ok {
			// Solution videos only exist for finished contests.
			if c.StatusAt(app.now) != contest.StatusPast {
				return app, app.setStatus(MsgVideoOnlyAfterEnd, StatusInfo), true
			}
			return app, tea.Batch(
				app.setStatus(MsgSearchingVideo, StatusInfo),
				app.resolveSolution(c)), true
		}
		return app, nil, true

	case "1", "2", "3":
		idx := int(key[0] - '1')
		if idx < len(contest.Platforms) {
			app.filter.TogglePlatform(contest.Platforms[idx])
			app.rebuildLists()
		}
		return app, nil, true
	}

	return app, nil, false
}

func (kh *KeyHandler) delegateToCharm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch kh.app.view {
	case ViewContests:
		lst := kh.activeList()
		*lst, cmd = lst.Update(msg)
		if msg.String() == kh.keys.Open && lst.FilterState() != list.Filtering {
			if c, ok := kh.app.selectedContest(); ok && c.Href != "" {
				return kh.app, kh.app.openURL(c.Href)
			}
		}
		return kh.app, cmd

	case ViewSearch:
		if !kh.app.searchInput.Focused() {
			switch msg.String() {
			case "tab", "shift+tab":
				kh.app.searchInput.Focus()
				return kh.app, nil
			case "up":
				if len(kh.app.searchList.Items()) > 0 && kh.app.searchList.Index() == 0 {
					kh.app.searchInput.Focus()
					return kh.app, nil
				}
			case "/", "i":
				kh.app.searchInput.Focus()
				return kh.app, nil
			}
		}

		kh.app.searchList, cmd = kh.app.searchList.Update(msg)
		if msg.String() == kh.keys.Open && !kh.app.searchInput.Focused() {
			if c, ok := kh.app.selectedContest(); ok && c.Href != "" {
				return kh.app, kh.app.openURL(c.Href)
			}
		}
		return kh.app, cmd

	case ViewHelp:
		kh.app.helpViewport, cmd = kh.app.helpViewport.Update(msg)
		return kh.app, cmd

	default:
		return kh.app, nil
	}
}

func (kh *KeyHandler) navigateBack() (tea.Model, tea.Cmd) {
	switch kh.app.view {
	case ViewSearch:
		kh.app.view = kh.app.previousView
		kh.app.searchInput.Reset()
		kh.app.searchList.SetItems([]list.Item{})
		return kh.app, nil

	case ViewHelp:
		kh.app.view = kh.app.previousView
		return kh.app, nil

	default:
		return kh.app, nil
	}
}

func (kh *KeyHandler) enterSearchMode() (tea.Model, tea.Cmd) {
	kh.app.previousView = kh.app.view
	kh.app.view = ViewSearch
	kh.app.searchInput.Reset()
	kh.app.searchInput.Focus()
	kh.app.searchList.SetItems([]list.Item{})
	if n, err := kh.app.searcher.DocCount(); err == nil {
		return kh.app, kh.app.setStatus(fmt.Sprintf("Search • idx: %d contests", n), StatusInfo)
	}
	return kh.app, nil
}

func (kh *KeyHandler) enterHelp() (tea.Model, tea.Cmd) {
	content := kh.helpMarkdown()
	if r, err := kh.app.getRenderer(); err == nil {
		if rendered, renderErr := r.Render(content); renderErr == nil {
			content = rendered
		}
	}
	kh.app.helpViewport.SetContent(content)
	kh.app.helpViewport.GotoTop()
	kh.app.previousView = kh.app.view
	kh.app.view = ViewHelp
	return kh.app, nil
}

func (kh *KeyHandler) helpMarkdown() string {
	k := kh.keys
	var b strings.Builder
	b.WriteString("# " + AppName + "\n\n")
	b.WriteString("## Contests\n\n")
	b.WriteString(fmt.Sprintf("- `%s` refresh all sources\n", k.Refresh))
	b.WriteString(fmt.Sprintf("- `%s` switch between upcoming and past\n", k.SwitchBucket))
	b.WriteString(fmt.Sprintf("- `%s` open contest page in browser\n", k.Open))
	b.WriteString(fmt.Sprintf("- `%s` open solution video\n", k.Solution))
	b.WriteString("- `1`/`2`/`3` toggle Codeforces / Leetcode / Codechef\n\n")
	b.WriteString("## Bookmarks\n\n")
	b.WriteString(fmt.Sprintf("- `%s` bookmark the selected contest\n", k.Bookmark))
	b.WriteString(fmt.Sprintf("- `%s` show bookmarked contests only\n\n", k.BookmarksOnly))
	b.WriteString("## Search\n\n")
	b.WriteString(fmt.Sprintf("- `%s` full-text search over loaded contests\n\n", k.Search))
	b.WriteString("## General\n\n")
	b.WriteString(fmt.Sprintf("- `%s` back\n", k.Back))
	b.WriteString(fmt.Sprintf("- `%s` quit\n", k.Quit))
	return b.String()
}

func sanitizeSearchInput(input string) string {
	input = strings.TrimSpace(input)
	if len(input) > 256 {
		input = input[:256]
	}
	input = strings.ReplaceAll(input, "\n", " ")
	input = strings.ReplaceAll(input, "\r", " ")
	input = strings.ReplaceAll(input, "\t", " ")
	for strings.Contains(input, "  ") {
		input = strings.ReplaceAll(input, "  ", " ")
	}
	return strings.TrimSpace(input)
}

// GetHelpForCurrentView returns only our custom help text (Charm handles the rest)
func (kh *KeyHandler) GetHelpForCurrentView() []string {
	k := kh.keys
	switch kh.app.view {
	case ViewContests:
		return []string{
			k.SwitchBucket + ": switch", k.Refresh + ": refresh", k.Search + ": search",
			k.Bookmark + ": bookmark", k.Solution + ": solution", k.Help + ": help",
		}
	case ViewSearch:
		return []string{k.Open + ": open", k.Back + ": back"}
	case ViewHelp:
		return []string{k.Back + ": back"}
	default:
		return []string{}
	}
}
