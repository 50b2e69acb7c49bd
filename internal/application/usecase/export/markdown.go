package export

import (
	"fmt"
	"strings"

	"github.com/khoahotran/portfolio-showcase/internal/domain/profile"
)

func renderMarkdown(p *profile.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n## %s\n\n%s\n\n", p.Name, p.Title, p.Bio)

	b.WriteString("## Education\n")
	for _, e := range p.Education {
		fmt.Fprintf(&b, "\n### %s\n- **Degree:** %s\n- **Period:** %s\n", e.Institution, e.Degree, e.Period)
		if e.Details != "" {
			fmt.Fprintf(&b, "- **Details:** %s\n", e.Details)
		}
	}

	b.WriteString("\n## Skills\n")
	for _, s := range p.Skills {
		fmt.Fprintf(&b, "- **%s** - %s\n", s.Name, s.Proficiency)
	}

	b.WriteString("\n## Projects\n")
	for _, pr := range p.Projects {
		fmt.Fprintf(&b, "\n### %s\n%s\n\n**Technologies:** %s\n", pr.Title, pr.Description, strings.Join(pr.Technologies, ", "))
		if pr.ValueAdded != "" {
			fmt.Fprintf(&b, "\n**Value Added:** %s\n", pr.ValueAdded)
		}
	}

	b.WriteString("\n## Certificates\n")
	for _, c := range p.Certificates {
		fmt.Fprintf(&b, "\n### %s\n- **Issuer:** %s\n- **Date:** %s\n", c.Name, c.Issuer, c.Date)
		if c.Description != "" {
			fmt.Fprintf(&b, "- **Description:** %s\n", c.Description)
		}
		if c.VerifyURL != "" {
			fmt.Fprintf(&b, "- [Verify Certificate](%s)\n", c.VerifyURL)
		}
	}

	b.WriteString("\n## Testimonials\n")
	for i, t := range p.Testimonials {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "\n> \"%s\"\n>\n> - %s, %s\n", t.Quote, t.Author, t.Relation)
	}

	ci := p.ContactInfo
	b.WriteString("\n## Contact\n")
	fmt.Fprintf(&b, "- Email: %s\n", ci.Email)
	if ci.Phone != "" {
		fmt.Fprintf(&b, "- Phone: %s\n", ci.Phone)
	}
	if ci.LinkedIn != "" {
		fmt.Fprintf(&b, "- LinkedIn: %s\n", ci.LinkedIn)
	}
	if ci.GitHub != "" {
		fmt.Fprintf(&b, "- GitHub: %s\n", ci.GitHub)
	}
	return b.String()
}
