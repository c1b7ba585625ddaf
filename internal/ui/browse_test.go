package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kirksw/ezorg/internal/github"
)

var testRepos = []github.Repo{
	{Name: "dagger", FullName: "google/dagger", License: "apache-2.0", Description: "Dependency injection"},
	{Name: "cpp-netlib", FullName: "google/cpp-netlib", License: "bsl-1.0"},
	{Name: "kratu", FullName: "google/kratu", License: "apache-2.0"},
}

func TestBrowseModelCtrlCCancels(t *testing.T) {
	m := newBrowseModel(testRepos, "")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	got := updated.(browseModel)

	if !got.cancelled {
		t.Fatal("expected model to be cancelled")
	}
	if !got.quitting {
		t.Fatal("expected model to quit on ctrl+c")
	}
}

func TestBrowseModelEnterSelectsRepo(t *testing.T) {
	m := newBrowseModel(testRepos, "")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(browseModel)

	if got.selected == nil || got.selected.FullName != "google/dagger" {
		t.Fatalf("selected=%v, want google/dagger", got.selected)
	}
	if !got.quitting {
		t.Fatal("expected model to quit on enter")
	}
}

func TestBrowseModelLicenseFilter(t *testing.T) {
	m := newBrowseModel(testRepos, "apache-2.0")
	if n := len(m.list.Items()); n != 2 {
		t.Fatalf("items=%d, want 2", n)
	}

	m = newBrowseModel(testRepos, "mit")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := updated.(browseModel); got.selected != nil {
		t.Fatalf("selected=%v, want nil with empty list", got.selected)
	}
}

func TestBrowseModelTypingFilters(t *testing.T) {
	m := newBrowseModel(testRepos, "")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("kra")})
	got := updated.(browseModel)

	items := got.list.Items()
	if len(items) != 1 {
		t.Fatalf("items=%d, want 1", len(items))
	}
	if item := items[0].(repoItem); item.Name != "kratu" {
		t.Fatalf("item=%s, want kratu", item.Name)
	}
}
