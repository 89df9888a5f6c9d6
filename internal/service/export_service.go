package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/techclub-site/internal/models"
	appErrors "github.com/noah-isme/techclub-site/pkg/errors"
	"github.com/noah-isme/techclub-site/pkg/export"
)

// ExportFormat is a downloadable listing format.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// Renderer turns a dataset into file bytes.
type Renderer interface {
	Render(data export.Dataset) ([]byte, error)
	ContentType() string
	Extension() string
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService produces CSV and PDF listings of the catalog.
type ExportService struct {
	catalog   catalogReader
	renderers map[ExportFormat]Renderer
	logger    *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(catalog catalogReader, csv Renderer, pdf Renderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	renderers := map[ExportFormat]Renderer{}
	if csv != nil {
		renderers[ExportFormatCSV] = csv
	}
	if pdf != nil {
		renderers[ExportFormatPDF] = pdf
	}
	return &ExportService{catalog: catalog, renderers: renderers, logger: logger}
}

// ParseExportFormat accepts csv or pdf, case-insensitively. Empty means csv.
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ExportFormatCSV:
		return ExportFormatCSV, nil
	case ExportFormatPDF:
		return ExportFormatPDF, nil
	}
	return "", appErrors.Clone(appErrors.ErrUnsupportedFormat, fmt.Sprintf("unsupported export format %q", raw))
}

// Events exports one event group ("upcoming", "past") or both ("all" or "").
func (s *ExportService) Events(ctx context.Context, group string, format ExportFormat) (*ExportFile, error) {
	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{
		Headers: []string{"ID", "Group", "Name", "Type", "Status", "Dates", "Time", "Venue", "Max Participants", "Prize Pool"},
	}
	switch strings.ToLower(group) {
	case "", "all":
		data.Title = "Events"
		data.Rows = append(eventRows(models.EventGroupUpcoming, catalog.UpcomingEvents), eventRows(models.EventGroupPast, catalog.PastEvents)...)
		group = "all"
	case string(models.EventGroupUpcoming):
		data.Title = "Upcoming Events"
		data.Rows = eventRows(models.EventGroupUpcoming, catalog.UpcomingEvents)
	case string(models.EventGroupPast):
		data.Title = "Past Events"
		data.Rows = eventRows(models.EventGroupPast, catalog.PastEvents)
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "group must be one of upcoming, past, all")
	}

	return s.render(data, "events-"+strings.ToLower(group), format)
}

// Projects exports every project.
func (s *ExportService) Projects(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	data := export.Dataset{
		Title:   "Projects",
		Headers: []string{"ID", "Name", "Category", "Status", "Dates", "Tech Stack", "Code", "Demo", "Docs"},
		Rows:    make([][]string, 0, len(catalog.Projects)),
	}
	for _, p := range catalog.Projects {
		data.Rows = append(data.Rows, []string{
			strconv.Itoa(p.ID),
			p.Name,
			string(p.Category),
			string(p.Status),
			DateLine(p.StartDate, p.EndDate),
			strings.Join(p.TechStack, ", "),
			deref(p.GitHubURL),
			deref(p.DemoURL),
			deref(p.DocsURL),
		})
	}
	return s.render(data, "projects", format)
}

func (s *ExportService) render(data export.Dataset, basename string, format ExportFormat) (*ExportFile, error) {
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, fmt.Sprintf("unsupported export format %q", format))
	}
	body, err := renderer.Render(data)
	if err != nil {
		s.logger.Error("export render failed", zap.String("file", basename), zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return &ExportFile{
		Filename:    basename + "." + renderer.Extension(),
		ContentType: renderer.ContentType(),
		Body:        body,
	}, nil
}

func eventRows(group models.EventGroup, events []models.Event) [][]string {
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		maxParticipants := ""
		if e.MaxParticipants != nil {
			maxParticipants = strconv.Itoa(*e.MaxParticipants)
		}
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			string(group),
			e.Name,
			string(e.Type),
			string(e.Status),
			DateLine(e.Date, e.EndDate),
			e.Time,
			e.Venue,
			maxParticipants,
			deref(e.PrizePool),
		})
	}
	return rows
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
