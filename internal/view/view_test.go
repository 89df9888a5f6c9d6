package view

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/techclub-site/internal/models"
	"github.com/noah-isme/techclub-site/internal/service"
)

type staticCatalog struct{ catalog *models.Catalog }

func (s staticCatalog) Snapshot(context.Context) (*models.Catalog, error) { return s.catalog, nil }

func strPtr(v string) *string { return &v }

func testCatalog() *models.Catalog {
	prize := "$5,000"
	return &models.Catalog{
		UpcomingEvents: []models.Event{{
			ID: 1, Name: "HackFest 2024", Description: "Build things", Image: "https://img.example.com/h.png",
			Date: "May 1, 2024", EndDate: strPtr("May 2, 2024"), Time: "9 AM", Venue: "Hub",
			Status: models.EventStatusOpen, Type: models.EventTypeHackathon, PrizePool: &prize,
		}},
		PastEvents: []models.Event{
			{ID: 5, Name: "Old Talk", Description: "Done", Image: "o.png", Date: "Jan 1, 2024", EndDate: strPtr("Jan 2, 2024"), Status: models.EventStatusEnded, Type: models.EventTypeSeminar},
			{ID: 6, Name: "Odd <Event>", Description: "x", Image: "x.png", Date: "Jan 5, 2024", Status: "Cancelled", Type: models.EventTypeWorkshop},
		},
		Projects: []models.Project{{
			ID: 2, Name: "AutoBot", Description: "Rover", Image: "a.png", StartDate: "Jan 2024",
			Status: models.ProjectStatusBeta, Category: models.ProjectCategoryRobotics,
			TechStack: []string{"C++", "ROS"}, GitHubURL: strPtr("https://github.com/club/autobot"),
		}},
	}
}

func newViews(t *testing.T) *Views {
	t.Helper()
	v, err := New("Tech Club")
	require.NoError(t, err)
	return v
}

func TestRenderEventsPage(t *testing.T) {
	v := newViews(t)
	page, err := service.NewPageService(staticCatalog{testCatalog()}, nil).EventsPage(context.Background())
	require.NoError(t, err)

	body, err := v.Render(PageEvents, v.Wrap("Events", "events", page))
	require.NoError(t, err)
	html := string(body)

	assert.Contains(t, html, "<title>Events | Tech Club</title>")
	assert.Contains(t, html, `<a href="/events" class="active">Events</a>`)
	assert.Contains(t, html, `<div class="grid cols-2">`)
	assert.Contains(t, html, `<div class="grid cols-3">`)
	assert.Contains(t, html, `class="badge badge-solid tone-purple">Hackathon</span>`)
	assert.Contains(t, html, "May 1, 2024 - May 2, 2024")
	assert.Contains(t, html, "Prize Pool: $5,000")
	assert.Contains(t, html, "Register Now")
	assert.Contains(t, html, `class="badge badge-solid tone-gray">Seminar</span>`)
	assert.Contains(t, html, `<div class="date">Jan 1, 2024</div>`)
	assert.NotContains(t, html, "Jan 1, 2024 - Jan 2, 2024")
	assert.Contains(t, html, `class="badge badge-solid">Cancelled</span>`)
	assert.Contains(t, html, "Odd &lt;Event&gt;")
	assert.Contains(t, html, "transition-delay: 100ms")
	assert.Less(t, strings.Index(html, "Upcoming Events"), strings.Index(html, "Past Events"))
}

func TestRenderProjectsPage(t *testing.T) {
	v := newViews(t)
	page, err := service.NewPageService(staticCatalog{testCatalog()}, nil).ProjectsPage(context.Background())
	require.NoError(t, err)

	body, err := v.Render(PageProjects, v.Wrap("Projects", "projects", page))
	require.NoError(t, err)
	html := string(body)

	assert.Contains(t, html, "🤖")
	assert.Contains(t, html, `class="badge badge-outline tone-cyan">Robotics</span>`)
	assert.Contains(t, html, `href="https://github.com/club/autobot"`)
	assert.Equal(t, 1, strings.Count(html, `class="action tone-blue"`))
	assert.NotContains(t, html, "> Demo</a>")
	assert.Contains(t, html, "Have a Project Idea?")
	assert.Contains(t, html, "Submit Your Idea")
	assert.Contains(t, html, "transition-delay: 0ms")
}

func TestRenderErrorPageFromMap(t *testing.T) {
	v := newViews(t)
	body, err := v.Render(PageError, map[string]interface{}{
		"SiteName": "Tech Club",
		"Title":    "Not Found",
		"Active":   "",
		"Year":     2024,
		"Content":  map[string]interface{}{"Status": 404, "Title": "Not Found", "Message": "page not found"},
	})
	require.NoError(t, err)
	assert.Contains(t, string(body), "404 Not Found")
	assert.Contains(t, string(body), "page not found")
}

func TestRenderUnknownPage(t *testing.T) {
	_, err := newViews(t).Render("missing", nil)
	assert.Error(t, err)
}
