package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/polkiloo/loyaltycampaign/internal/domain/model"
)

const categoryWidth = 28

// Console prints analysis results as plain text. Styling is applied only
// when the writer is a color capable terminal.
type Console struct {
	out      io.Writer
	heading  lipgloss.Style
	category lipgloss.Style
	value    lipgloss.Style
}

// NewConsole constructs a console reporter writing to out.
func NewConsole(out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		out:      out,
		heading:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		category: r.NewStyle().Width(categoryWidth),
		value:    r.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
	}
}

// CampaignImpact prints gross and net membership impact.
func (c *Console) CampaignImpact(impact model.CampaignImpact) error {
	return c.print(
		fmt.Sprintf("Gross impact of the campaign on memberships: %d", impact.Gross),
		fmt.Sprintf("Net impact of the campaign on memberships (considering cancellations): %d", impact.Net()),
	)
}

// Demographics prints the full breakdown of every attribute.
func (c *Console) Demographics(demo model.Demographics) error {
	lines := []string{"", c.heading.Render("Campaign adoption by demographics:")}
	for _, dist := range demo {
		lines = append(lines, "", c.heading.Render(dist.Attribute+" breakdown:"))
		if len(dist.Shares) == 0 {
			lines = append(lines, "(no values recorded in period)")
			continue
		}
		for _, s := range dist.Shares {
			lines = append(lines, c.category.Render(s.Category)+c.value.Render(strconv.FormatFloat(s.Proportion, 'f', 6, 64)))
		}
	}
	return c.print(lines...)
}

// SeasonalFlights prints summer flight totals and their change.
func (c *Console) SeasonalFlights(f model.SeasonalFlights) error {
	return c.print(
		"",
		fmt.Sprintf("Total flights booked during summer %d: %d", f.BaselineYear, f.Baseline),
		fmt.Sprintf("Total flights booked during summer %d: %d", f.ComparisonYear, f.Comparison),
		fmt.Sprintf("Change in number of flights booked from summer %d to summer %d: %d", f.BaselineYear, f.ComparisonYear, f.Delta()),
	)
}

func (c *Console) print(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(c.out, line); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
