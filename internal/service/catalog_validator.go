package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/techclub-site/internal/models"
)

// RecordIssue describes one problem found in a catalog record.
type RecordIssue struct {
	Collection string `json:"collection"`
	Index      int    `json:"index"`
	ID         int    `json:"id"`
	Field      string `json:"field"`
	Rule       string `json:"rule"`
}

func (i RecordIssue) String() string {
	return fmt.Sprintf("%s[%d] (id=%d): %s failed %q", i.Collection, i.Index, i.ID, i.Field, i.Rule)
}

// CatalogValidator checks catalog records against their schema.
type CatalogValidator struct {
	validate *validator.Validate
}

// NewCatalogValidator registers the enumeration rules on validate (or a fresh
// validator when nil).
func NewCatalogValidator(validate *validator.Validate) *CatalogValidator {
	if validate == nil {
		validate = validator.New()
	}
	validate.RegisterValidation("event_status", func(fl validator.FieldLevel) bool {
		return models.EventStatus(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("event_type", func(fl validator.FieldLevel) bool {
		return models.EventType(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("project_status", func(fl validator.FieldLevel) bool {
		return models.ProjectStatus(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("project_category", func(fl validator.FieldLevel) bool {
		return models.ProjectCategory(fl.Field().String()).Valid()
	})
	return &CatalogValidator{validate: validate}
}

// Check returns every issue found in the catalog, in collection order. Event
// ids must be unique across both groups, project ids across projects.
func (v *CatalogValidator) Check(catalog *models.Catalog) []RecordIssue {
	if catalog == nil {
		return nil
	}
	var issues []RecordIssue

	seenEvents := map[int]struct{}{}
	checkEvents := func(collection string, events []models.Event) {
		for i, e := range events {
			issues = append(issues, v.structIssues(collection, i, e.ID, e)...)
			if _, dup := seenEvents[e.ID]; dup && e.ID != 0 {
				issues = append(issues, RecordIssue{Collection: collection, Index: i, ID: e.ID, Field: "ID", Rule: "unique"})
			}
			seenEvents[e.ID] = struct{}{}
		}
	}
	checkEvents("upcomingEvents", catalog.UpcomingEvents)
	checkEvents("pastEvents", catalog.PastEvents)

	seenProjects := map[int]struct{}{}
	for i, p := range catalog.Projects {
		issues = append(issues, v.structIssues("projects", i, p.ID, p)...)
		if _, dup := seenProjects[p.ID]; dup && p.ID != 0 {
			issues = append(issues, RecordIssue{Collection: "projects", Index: i, ID: p.ID, Field: "ID", Rule: "unique"})
		}
		seenProjects[p.ID] = struct{}{}
	}

	return issues
}

func (v *CatalogValidator) structIssues(collection string, index, id int, record interface{}) []RecordIssue {
	err := v.validate.Struct(record)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []RecordIssue{{Collection: collection, Index: index, ID: id, Field: "*", Rule: err.Error()}}
	}
	issues := make([]RecordIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, RecordIssue{Collection: collection, Index: index, ID: id, Field: fe.Field(), Rule: fe.Tag()})
	}
	return issues
}

// Summarize joins issues into one line for error messages.
func Summarize(issues []RecordIssue) string {
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		parts = append(parts, issue.String())
	}
	return strings.Join(parts, "; ")
}
