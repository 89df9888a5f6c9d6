package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/techclub-site/internal/models"
	"github.com/noah-isme/techclub-site/internal/repository"
	"github.com/noah-isme/techclub-site/internal/service"
	"github.com/noah-isme/techclub-site/pkg/export"
	"github.com/noah-isme/techclub-site/pkg/storage"
)

type report struct {
	Source   string
	Catalog  *models.Catalog
	Issues   []service.RecordIssue
	Exported []string
	Duration time.Duration
}

func main() {
	var (
		path      string
		exportDir string
		timeout   time.Duration
	)

	flag.StringVar(&path, "catalog", "", "Path to a catalog JSON file (default: the embedded seed)")
	flag.StringVar(&exportDir, "export-dir", "", "Write CSV and PDF listings into this directory when the catalog is clean")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "Overall time limit")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var source service.CatalogSource = repository.NewEmbeddedCatalogRepository()
	if path != "" {
		source = repository.NewFileCatalogRepository(path)
	}

	rep, err := run(ctx, source, exportDir)
	if err != nil {
		log.Fatalf("catalog check failed: %v", err)
	}
	printReport(os.Stdout, rep)
	if len(rep.Issues) > 0 {
		os.Exit(1)
	}
}

func run(ctx context.Context, source service.CatalogSource, exportDir string) (*report, error) {
	start := time.Now()
	catalog, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	rep := &report{
		Source:  source.Name(),
		Catalog: catalog,
		Issues:  service.NewCatalogValidator(validator.New()).Check(catalog),
	}

	if exportDir != "" && len(rep.Issues) == 0 {
		rep.Exported, err = writeExports(ctx, catalog, exportDir)
		if err != nil {
			return nil, err
		}
	}
	rep.Duration = time.Since(start)
	return rep, nil
}

// snapshot serves an already loaded catalog to the export service.
type snapshot struct{ catalog *models.Catalog }

func (s snapshot) Snapshot(context.Context) (*models.Catalog, error) { return s.catalog, nil }

func writeExports(ctx context.Context, catalog *models.Catalog, dir string) ([]string, error) {
	store, err := storage.NewLocalStorage(dir)
	if err != nil {
		return nil, err
	}
	exports := service.NewExportService(snapshot{catalog: catalog}, export.NewCSVExporter(), export.NewPDFExporter(), nil)

	var files []*service.ExportFile
	for _, format := range []service.ExportFormat{service.ExportFormatCSV, service.ExportFormatPDF} {
		for _, group := range []string{"all", string(models.EventGroupUpcoming), string(models.EventGroupPast)} {
			file, err := exports.Events(ctx, group, format)
			if err != nil {
				return nil, err
			}
			files = append(files, file)
		}
		file, err := exports.Projects(ctx, format)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	written := make([]string, 0, len(files))
	for _, file := range files {
		path, err := store.Save(file.Filename, file.Body)
		if err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

func printReport(w io.Writer, rep *report) {
	fmt.Fprintln(w, "Catalog Check Report")
	fmt.Fprintln(w, "====================")
	fmt.Fprintf(w, "Source: %s (%s)\n", rep.Source, rep.Duration)
	fmt.Fprintf(w, "Upcoming events: %d | Past events: %d | Projects: %d\n",
		len(rep.Catalog.UpcomingEvents), len(rep.Catalog.PastEvents), len(rep.Catalog.Projects))
	status := "OK"
	if len(rep.Issues) > 0 {
		status = "INVALID"
	}
	fmt.Fprintf(w, "[%s] %d issue(s)\n", status, len(rep.Issues))
	for _, issue := range rep.Issues {
		fmt.Fprintf(w, "  %s\n", issue)
	}
	for _, path := range rep.Exported {
		fmt.Fprintf(w, "  wrote %s\n", path)
	}
}
