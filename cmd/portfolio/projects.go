package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"tperticaro.dev/internal/models"
)

var projectsTag string

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the project catalog",
	Args:  cobra.NoArgs,
	RunE:  runProjects,
}

func init() {
	projectsCmd.Flags().StringVarP(&projectsTag, "tag", "t", models.FilterAll, "only list projects with this tag")
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	techStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(5)
)

func runProjects(cmd *cobra.Command, args []string) error {
	svc := loadProjects()
	if svc == nil {
		return fmt.Errorf("project catalog unavailable")
	}
	projects := svc.Filter(projectsTag)
	if len(projects) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No projects tagged %q\n", projectsTag)
		return nil
	}
	for _, p := range projects {
		fmt.Fprintln(cmd.OutOrStdout(), formatProject(p))
	}
	return nil
}

func formatProject(p *models.Project) string {
	var b strings.Builder
	b.WriteString(idStyle.Render(fmt.Sprintf("%3d", p.ID)))
	b.WriteString("  ")
	b.WriteString(titleStyle.Render(p.Title))
	if len(p.Tags) > 0 {
		b.WriteString("  ")
		b.WriteString(tagStyle.Render("[" + strings.Join(p.Tags, ", ") + "]"))
	}
	if len(p.Technologies) > 0 {
		b.WriteString("\n")
		b.WriteString(techStyle.Render(strings.Join(p.Technologies, " · ")))
	}
	return b.String()
}
