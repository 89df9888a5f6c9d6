package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/techclub-site/internal/models"
)

const (
	selectClubEvents = `SELECT id, name, description, image, start_date, end_date, time_label, venue, status, event_type, max_participants, prize_pool
        FROM club_events ORDER BY display_order, id`
	selectClubProjects = `SELECT id, name, description, image, start_date, end_date, status, category, tech_stack, github_url, demo_url, docs_url
        FROM club_projects ORDER BY display_order, id`
)

// PostgresCatalogRepository reads the catalog from the club_events and
// club_projects tables. Events live in one table; the upcoming/past split is
// derived from their status.
type PostgresCatalogRepository struct {
	db *sqlx.DB
}

// NewPostgresCatalogRepository instantiates the repository.
func NewPostgresCatalogRepository(db *sqlx.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

// Name identifies the source in logs and metrics.
func (r *PostgresCatalogRepository) Name() string { return "postgres" }

type projectRow struct {
	models.Project
	TechStack pq.StringArray `db:"tech_stack"`
}

// Load reads both tables in display order.
func (r *PostgresCatalogRepository) Load(ctx context.Context) (*models.Catalog, error) {
	var events []models.Event
	if err := r.db.SelectContext(ctx, &events, selectClubEvents); err != nil {
		return nil, fmt.Errorf("list club events: %w", err)
	}

	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, selectClubProjects); err != nil {
		return nil, fmt.Errorf("list club projects: %w", err)
	}

	projects := make([]models.Project, 0, len(rows))
	for _, row := range rows {
		p := row.Project
		p.TechStack = []string(row.TechStack)
		if p.TechStack == nil {
			p.TechStack = []string{}
		}
		projects = append(projects, p)
	}

	upcoming, past := models.PartitionEvents(events)
	return &models.Catalog{UpcomingEvents: upcoming, PastEvents: past, Projects: projects}, nil
}
