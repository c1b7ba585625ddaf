package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kirksw/ezorg/internal/github"
)

type repoItem struct {
	github.Repo
}

func (i repoItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", i.Name, i.FullName, i.Description)
}

type repoDelegate struct{}

func (d repoDelegate) Height() int                             { return 2 }
func (d repoDelegate) Spacing() int                            { return 1 }
func (d repoDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d repoDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(repoItem)
	if !ok {
		return
	}

	var style lipgloss.Style
	if index == m.Index() {
		style = selectedStyle
	} else {
		style = normalStyle
	}

	text := displayName(item.Repo)
	if item.License != "" {
		text += " " + licenseStyle.Render("["+item.License+"]")
	}
	if item.Description != "" {
		text += fmt.Sprintf("\n  %s", truncateString(item.Description, 60))
	}
	fmt.Fprint(w, style.Render(text))
}

// BrowseResult holds the outcome of the browse TUI.
type BrowseResult struct {
	Repo      *github.Repo
	Cancelled bool
}

type browseModel struct {
	repos     []github.Repo
	license   string
	list      list.Model
	input     textinput.Model
	selected  *github.Repo
	cancelled bool
	quitting  bool
	lastInput string
}

func newBrowseModel(repos []github.Repo, license string) browseModel {
	input := textinput.New()
	input.Placeholder = "Search repositories..."
	input.Focus()
	input.CharLimit = 256
	input.Width = 80

	l := list.New(nil, repoDelegate{}, 0, 0)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(false)
	l.SetWidth(80)
	l.SetHeight(12)

	m := browseModel{
		repos:   repos,
		license: license,
		list:    l,
		input:   input,
	}
	m.list.SetItems(m.filterRepos(""))
	return m
}

func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		listHeight := msg.Height - 8
		if listHeight < 4 {
			listHeight = 4
		}
		m.list.SetHeight(listHeight)
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if item, ok := m.list.SelectedItem().(repoItem); ok {
				repo := item.Repo
				m.selected = &repo
			}
			m.quitting = true
			return m, tea.Quit
		case tea.KeyDown, tea.KeyCtrlN:
			m.list.CursorDown()
			return m, nil
		case tea.KeyUp, tea.KeyCtrlP:
			m.list.CursorUp()
			return m, nil
		}
	}

	input, cmd := m.input.Update(msg)
	m.input = input

	if current := m.input.Value(); current != m.lastInput {
		m.lastInput = current
		m.list.SetItems(m.filterRepos(current))
		m.list.ResetSelected()
	}

	return m, cmd
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	header := fmt.Sprintf("Browse repositories (%d)", len(m.list.Items()))
	if m.license != "" {
		header += " license: " + m.license
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.list.Items()) > 0 {
		b.WriteString(m.list.View())
	} else {
		b.WriteString(mutedStyle.Render("No repositories found"))
	}

	b.WriteString("\n\n")
	b.WriteString(instructionStyle.Render("up/down: navigate | enter: select | esc: cancel"))
	return b.String()
}

func (m browseModel) filterRepos(query string) []list.Item {
	query = strings.ToLower(strings.TrimSpace(query))
	items := make([]list.Item, 0, len(m.repos))
	for _, repo := range m.repos {
		if m.license != "" && repo.License != m.license {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(repo.Name), query) &&
			!strings.Contains(strings.ToLower(repo.FullName), query) &&
			!strings.Contains(strings.ToLower(repo.Description), query) {
			continue
		}
		items = append(items, repoItem{Repo: repo})
	}
	return items
}

// RunBrowse lets the user pick one of repos. When license is set only repos
// with that license key are offered.
func RunBrowse(repos []github.Repo, license string) (*BrowseResult, error) {
	p := tea.NewProgram(
		newBrowseModel(repos, license),
		tea.WithAltScreen(),
	)
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run repository browser: %w", err)
	}

	m, ok := finalModel.(browseModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if m.cancelled {
		return &BrowseResult{Cancelled: true}, nil
	}
	return &BrowseResult{Repo: m.selected}, nil
}
