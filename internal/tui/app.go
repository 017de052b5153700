package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/contesthub/contesthub/internal/aggregate"
	"github.com/contesthub/contesthub/internal/config"
	"github.com/contesthub/contesthub/internal/contest"
	"github.com/contesthub/contesthub/internal/logger"
	"github.com/contesthub/contesthub/internal/media"
	"github.com/contesthub/contesthub/internal/search"
	"github.com/contesthub/contesthub/internal/solutions"
	"github.com/contesthub/contesthub/internal/source/clist"
	"github.com/contesthub/contesthub/internal/source/codeforces"
)

type App struct {
	config      *config.Config
	cfClient    *codeforces.Client
	clistClient *clist.Client
	resolver    *solutions.Resolver
	launcher    *media.Launcher
	searcher    search.Searcher
	log         logger.Logger
	keyHandler  *KeyHandler

	upcomingList list.Model
	pastList     list.Model
	searchList   list.Model
	searchInput  textinput.Model
	helpViewport viewport.Model

	view         View
	previousView View
	bucket       Bucket

	// Raw per-source lists; a failed fetch keeps the previous list.
	cfContests    []contest.Contest
	clistUpcoming []contest.Contest
	clistPast     []contest.Contest

	snapshot  aggregate.Snapshot
	byID      map[string]contest.Contest
	bookmarks *contest.BookmarkSet
	filter    contest.FilterState
	now       time.Time

	// generation stamps each refresh so a stale in-flight fetch cannot
	// overwrite a newer snapshot.
	generation     int
	pendingSources int
	failedSources  int
	loading        bool
	loaded         bool

	status     string
	statusKind StatusKind
	statusSeq  int

	width  int
	height int
	err    error

	glamourRenderer *glamour.TermRenderer
	rendererWidth   int
}

func NewApp(cfg *config.Config, cfClient *codeforces.Client, clistClient *clist.Client,
	resolver *solutions.Resolver, searcher search.Searcher, log logger.Logger) *App {

	ApplyTheme(cfg)

	upcomingList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	upcomingList.Title = "› upcoming contests"
	upcomingList.SetShowStatusBar(false)
	upcomingList.SetFilteringEnabled(true)
	upcomingList.SetShowHelp(true)

	pastList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	pastList.Title = "› past contests"
	pastList.SetShowStatusBar(false)
	pastList.SetFilteringEnabled(true)
	pastList.SetShowHelp(true)

	searchList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	searchList.Title = "› search results"
	searchList.SetShowStatusBar(false)
	searchList.SetShowHelp(false)
	searchList.SetFilteringEnabled(false)

	si := textinput.New()
	si.Placeholder = "Search contests..."

	app := &App{
		config:       cfg,
		cfClient:     cfClient,
		clistClient:  clistClient,
		resolver:     resolver,
		launcher:     media.NewLauncher(cfg),
		searcher:     searcher,
		log:          log,
		upcomingList: upcomingList,
		pastList:     pastList,
		searchList:   searchList,
		searchInput:  si,
		helpViewport: viewport.New(0, 0),
		view:         ViewContests,
		previousView: ViewContests,
		bucket:       BucketUpcoming,
		byID:         map[string]contest.Contest{},
		bookmarks:    contest.NewBookmarkSet(),
		filter:       contest.NewFilterState(),
		now:          time.Now(),
	}

	app.keyHandler = NewKeyHandler(app, cfg)

	return app
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.beginRefresh(),
		a.scheduleTick(),
		tea.EnterAltScreen,
	)
}

// beginRefresh starts a new fetch generation for all sources.
func (a *App) beginRefresh() tea.Cmd {
	a.generation++
	a.pendingSources = 3
	a.failedSources = 0
	a.loading = true
	return tea.Batch(a.setStatus(MsgRefreshing, StatusInfo), a.refreshContests())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.upcomingList.SetSize(msg.Width, msg.Height-3)
		a.pastList.SetSize(msg.Width, msg.Height-3)
		searchListHeight := msg.Height - 10
		if searchListHeight < 5 {
			searchListHeight = 5
		}
		a.searchList.SetSize(msg.Width, searchListHeight)
		a.helpViewport.Width = msg.Width
		a.helpViewport.Height = msg.Height - 3

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case tickMsg:
		a.now = time.Time(msg)
		a.rebuildLists()
		cmds = append(cmds, a.scheduleTick())

	case sourceLoadedMsg:
		// Drop completions from a superseded refresh.
		if msg.generation != a.generation {
			break
		}
		if a.pendingSources > 0 {
			a.pendingSources--
		}
		if msg.err != nil {
			a.failedSources++
		} else {
			switch msg.kind {
			case sourceCodeforces:
				a.cfContests = msg.contests
			case sourceClistUpcoming:
				a.clistUpcoming = msg.contests
			case sourceClistPast:
				a.clistPast = msg.contests
			}
			a.loaded = true
			a.err = nil
		}

		a.now = time.Now()
		a.snapshot = aggregate.Buckets(a.cfContests, a.clistUpcoming, a.clistPast, a.now)
		a.indexSnapshot()
		a.rebuildLists()

		if a.pendingSources == 0 {
			a.loading = false
			if a.failedSources == 3 && !a.loaded {
				a.err = fmt.Errorf("all contest sources failed")
				break
			}
			kind := StatusSuccess
			if a.failedSources > 0 {
				kind = StatusWarn
			}
			cmds = append(cmds, a.setStatus(
				MsgRefreshSummary(len(a.snapshot.Upcoming), len(a.snapshot.Past), a.failedSources), kind))
			cmds = append(cmds, func() tea.Msg {
				if err := a.searcher.Reindex(a.searchDocs()); err != nil {
					return errorMsg{err: err}
				}
				return nil
			})
		}

	case solutionFoundMsg:
		a.log.Info("opened solution video",
			logger.String("contest", msg.contestName), logger.String("url", msg.url))
		cmds = append(cmds, a.setStatus("Opened solution for "+msg.contestName, StatusSuccess))

	case solutionMissingMsg:
		cmds = append(cmds, a.setStatus(MsgVideoNotUploaded, StatusWarn))

	case searchResultsMsg:
		if a.view == ViewSearch {
			items := make([]list.Item, 0, len(msg.ids))
			for _, id := range msg.ids {
				if c, ok := a.byID[id]; ok {
					items = append(items, a.newItem(c))
				}
			}
			a.searchList.SetItems(items)
			cmds = append(cmds, a.setStatus(MsgResultsCount(len(items)), StatusInfo))
		}

	case statusExpiredMsg:
		if msg.seq == a.statusSeq {
			a.status = ""
		}

	case errorMsg:
		a.loading = false
		a.err = msg.err
	}

	switch a.view {
	case ViewContests:
		if a.bucket == BucketUpcoming {
			newList, cmd := a.upcomingList.Update(msg)
			a.upcomingList = newList
			cmds = append(cmds, cmd)
		} else {
			newList, cmd := a.pastList.Update(msg)
			a.pastList = newList
			cmds = append(cmds, cmd)
		}
	case ViewSearch:
		newInput, cmd := a.searchInput.Update(msg)
		a.searchInput = newInput
		cmds = append(cmds, cmd)

		newList, listCmd := a.searchList.Update(msg)
		a.searchList = newList
		cmds = append(cmds, listCmd)
	case ViewHelp:
		switch msg.(type) {
		case tea.KeyMsg, tea.WindowSizeMsg, tea.MouseMsg:
			newViewport, cmd := a.helpViewport.Update(msg)
			a.helpViewport = newViewport
			cmds = append(cmds, cmd)
		}
	}

	return a, tea.Batch(cmds...)
}

// indexSnapshot rebuilds the id lookup used by search results and actions.
func (a *App) indexSnapshot() {
	a.byID = make(map[string]contest.Contest, len(a.snapshot.Upcoming)+len(a.snapshot.Past))
	for _, c := range a.snapshot.Upcoming {
		a.byID[c.ID] = c
	}
	for _, c := range a.snapshot.Past {
		a.byID[c.ID] = c
	}
}

func (a *App) searchDocs() []search.Document {
	docs := make([]search.Document, 0, len(a.byID))
	for _, c := range a.byID {
		docs = append(docs, search.Document{
			ID:       c.ID,
			Name:     c.Name,
			Platform: string(c.Platform),
			Status:   string(c.StatusAt(a.now)),
		})
	}
	return docs
}

func (a *App) newItem(c contest.Contest) contestItem {
	return contestItem{contest: c, now: a.now, bookmarked: a.bookmarks.Has(c.ID)}
}

// rebuildLists reapplies the filter pipeline and refreshes both lists.
// Selection is preserved by index, which is good enough across a tick.
func (a *App) rebuildLists() {
	upcoming := a.filter.Apply(a.snapshot.Upcoming, a.bookmarks)
	past := a.filter.Apply(a.snapshot.Past, a.bookmarks)

	upcomingItems := make([]list.Item, len(upcoming))
	for i, c := range upcoming {
		upcomingItems[i] = a.newItem(c)
	}
	pastItems := make([]list.Item, len(past))
	for i, c := range past {
		pastItems[i] = a.newItem(c)
	}

	a.upcomingList.SetItems(upcomingItems)
	a.pastList.SetItems(pastItems)
	a.upcomingList.Title = a.listTitle("upcoming contests")
	a.pastList.Title = a.listTitle("past contests")
}

func (a *App) listTitle(base string) string {
	var tags []string
	for _, p := range contest.Platforms {
		if a.filter.Platforms[p] {
			tags = append(tags, strings.ToLower(string(p)))
		}
	}
	title := "› " + base
	if len(tags) < len(contest.Platforms) {
		title += " [" + strings.Join(tags, ",") + "]"
	}
	if a.filter.BookmarksOnly {
		title += " [★]"
	}
	return title
}

// selectedContest returns the contest under the cursor in the active list.
func (a *App) selectedContest() (contest.Contest, bool) {
	var item list.Item
	switch {
	case a.view == ViewSearch:
		item = a.searchList.SelectedItem()
	case a.bucket == BucketUpcoming:
		item = a.upcomingList.SelectedItem()
	default:
		item = a.pastList.SelectedItem()
	}
	if ci, ok := item.(contestItem); ok {
		return ci.contest, true
	}
	return contest.Contest{}, false
}

func (a *App) setStatus(msg string, kind StatusKind) tea.Cmd {
	a.status = msg
	a.statusKind = kind
	a.statusSeq++
	return a.expireStatus(a.statusSeq)
}

func (a *App) getRenderer() (*glamour.TermRenderer, error) {
	wordWrapWidth := (a.width * 9) / 10
	if wordWrapWidth > 120 {
		wordWrapWidth = 120
	}
	if wordWrapWidth < 40 {
		wordWrapWidth = 40
	}

	if a.glamourRenderer == nil || abs(a.rendererWidth-wordWrapWidth) > 10 {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wordWrapWidth),
		)
		if err != nil {
			return nil, err
		}
		a.glamourRenderer = r
		a.rendererWidth = wordWrapWidth
	}

	return a.glamourRenderer, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (a *App) View() string {
	var content string

	switch a.view {
	case ViewContests:
		if !a.loaded && !a.loading {
			content = lipgloss.NewStyle().
				Width(a.width).
				Height(a.height-3).
				Align(lipgloss.Center, lipgloss.Center).
				Render(GetWelcomeMessage())
		} else if a.loading && !a.loaded {
			content = lipgloss.NewStyle().
				Width(a.width).
				Height(a.height-3).
				Align(lipgloss.Center, lipgloss.Center).
				Render(lipgloss.NewStyle().Foreground(MutedColor).Render("Loading contests..."))
		} else if a.bucket == BucketUpcoming {
			content = a.upcomingList.View()
		} else {
			content = a.pastList.View()
		}

	case ViewSearch:
		searchInputWidth := a.width - 8
		if searchInputWidth < 10 {
			searchInputWidth = a.width - 4
		}
		a.searchInput.Width = searchInputWidth

		inputBorderColor := MutedColor
		if a.searchInput.Focused() {
			inputBorderColor = AccentColor
		}

		searchInput := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(inputBorderColor).
			Padding(0, 1).
			Width(searchInputWidth + 4).
			Render(a.searchInput.View())

		helpText := ""
		if a.searchInput.Focused() {
			helpText = "Type to search • Tab/↓: results • Esc: back"
		} else if len(a.searchList.Items()) > 0 {
			helpText = "↑↓: navigate • Enter: open • Esc: back"
		} else {
			helpText = "No results found • Tab/↑: search box • Esc: back"
		}

		searchContent := lipgloss.JoinVertical(
			lipgloss.Top,
			HeaderStyle.Render(CompactLogo + " search"),
			"",
			searchInput,
			lipgloss.NewStyle().Foreground(MutedColor).Render(helpText),
			"",
			a.searchList.View(),
		)

		content = lipgloss.NewStyle().
			Width(a.width).
			Height(a.height - 3).
			MaxHeight(a.height - 3).
			Render(searchContent)

	case ViewHelp:
		content = a.helpViewport.View()
	}

	customStatus := a.getCustomStatusBar()
	if customStatus != "" {
		separatorWidth := a.width - 2
		if separatorWidth < 0 {
			separatorWidth = 0
		}
		separator := lipgloss.NewStyle().
			Foreground(MutedColor).
			Render("─" + strings.Repeat("─", separatorWidth))

		return lipgloss.JoinVertical(lipgloss.Top, content, separator, customStatus)
	}

	return content
}

func (a *App) getCustomStatusBar() string {
	if a.err != nil {
		errorText := StatusErrorStyle.Render(fmt.Sprintf("✗ %v", a.err))
		return lipgloss.NewStyle().
			Width(a.width).
			Padding(0, 1).
			Render(errorText)
	}

	if a.status != "" {
		var style lipgloss.Style
		switch a.statusKind {
		case StatusSuccess:
			style = StatusSuccessStyle
		case StatusWarn:
			style = StatusWarnStyle
		case StatusError:
			style = StatusErrorStyle
		default:
			style = StatusInfoStyle
		}
		return lipgloss.NewStyle().
			Width(a.width).
			Padding(0, 1).
			Render(style.Render(a.status))
	}

	commands := a.keyHandler.GetHelpForCurrentView()
	if len(commands) == 0 {
		return ""
	}

	commandText := strings.Join(commands, " • ")
	return lipgloss.NewStyle().
		Width(a.width).
		Padding(0, 1).
		Foreground(MutedColor).
		Render(truncateEnd(commandText, a.width-2))
}
