package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kirksw/ezorg/internal/github"
)

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	instructionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	normalStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	licenseStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("108"))
)

// RenderRepoNames formats a name listing with a header line. With plain set
// the output is one bare name per line, suitable for pipes.
func RenderRepoNames(org, license string, names []string, plain bool) string {
	var b strings.Builder

	if plain {
		for _, name := range names {
			b.WriteString(name)
			b.WriteString("\n")
		}
		return b.String()
	}

	header := fmt.Sprintf("%s: %d repositories", org, len(names))
	if license != "" {
		header += fmt.Sprintf(" with license %s", license)
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if len(names) == 0 {
		b.WriteString(mutedStyle.Render("  (none)"))
		b.WriteString("\n")
		return b.String()
	}

	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(normalStyle.Render(name))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderRepoDetails formats cached repos with description and license.
func RenderRepoDetails(repos []github.Repo) string {
	var b strings.Builder
	for _, repo := range repos {
		b.WriteString("  ")
		b.WriteString(selectedStyle.Render(displayName(repo)))
		if repo.License != "" {
			b.WriteString(" ")
			b.WriteString(licenseStyle.Render("[" + repo.License + "]"))
		}
		b.WriteString("\n")
		if desc := strings.TrimSpace(repo.Description); desc != "" {
			b.WriteString("    ")
			b.WriteString(mutedStyle.Render(desc))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func displayName(repo github.Repo) string {
	if repo.FullName != "" {
		return repo.FullName
	}
	return repo.Name
}

// truncateString cuts s to at most maxLen runes, ending in "..." when shortened.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
