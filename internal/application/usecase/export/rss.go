package export

import (
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"github.com/khoahotran/portfolio-showcase/internal/domain/profile"
)

// renderRSS publishes one item per project.
func renderRSS(p *profile.Profile, siteURL string) (string, error) {
	now := time.Now()
	feed := &feeds.Feed{
		Title:       p.Name + " - Projects",
		Link:        &feeds.Link{Href: siteURL + "/api/profile"},
		Description: p.Title,
		Author:      &feeds.Author{Name: p.Name, Email: p.ContactInfo.Email},
		Created:     now,
	}

	for _, pr := range p.Projects {
		link := pr.Link
		if link == "" {
			link = siteURL + "/api/profile#project-" + pr.ID
		}
		desc := pr.Description
		if len(pr.Technologies) > 0 {
			desc += " (" + strings.Join(pr.Technologies, ", ") + ")"
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          pr.ID,
			Title:       pr.Title,
			Link:        &feeds.Link{Href: link},
			Description: desc,
			Content:     pr.LongDescription,
			Created:     now,
		})
	}

	return feed.ToRss()
}
