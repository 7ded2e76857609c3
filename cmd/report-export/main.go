// Command report-export writes the daily registrations report as CSV, reading
// events from Postgres or from a JSON export file.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"institute-insights-service/internal/platform/config"
	"institute-insights-service/internal/reports/adapters/csvexport"
	"institute-insights-service/internal/reports/adapters/jsonfile"
	reportsRepoPg "institute-insights-service/internal/reports/adapters/postgres"
	"institute-insights-service/internal/reports/core/aggregator"
	"institute-insights-service/internal/reports/core/ports"
	reportsUsecase "institute-insights-service/internal/reports/core/usecase"

	_ "github.com/lib/pq"
	"github.com/schollz/progressbar/v3"
)

type options struct {
	timezone string
	from     string
	to       string
	order    string
	roles    []string
	progress bool
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dsn := flag.String("dsn", cfg.PostgresDSN, "Postgres DSN (defaults to POSTGRES_DSN)")
	eventsFile := flag.String("events", "", "read events from a JSON array file instead of Postgres")
	timezone := flag.String("timezone", cfg.ReportTimezone, "IANA timezone of the calendar days")
	from := flag.String("from", "", "first day, YYYY-MM-DD")
	to := flag.String("to", "", "last day, YYYY-MM-DD")
	order := flag.String("order", "asc", "asc | desc")
	out := flag.String("out", "-", "output file, - for stdout")
	quiet := flag.Bool("q", false, "hide the progress bar")
	flag.Parse()

	var reader ports.EventReaderPort
	switch {
	case *eventsFile != "":
		reader = jsonfile.NewEventSource(*eventsFile)
	case *dsn != "":
		db, err := sql.Open("postgres", *dsn)
		if err != nil {
			log.Fatalf("failed to open postgres: %v", err)
		}
		defer db.Close()
		reader = reportsRepoPg.NewEventReader(reportsRepoPg.NewSQLDB(db))
	default:
		log.Fatal("Usage: report-export -dsn ... | -events file.json [-timezone Africa/Cairo] [-out report.csv]")
	}

	var w io.Writer = os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	n, err := export(context.Background(), reader, w, options{
		timezone: *timezone,
		from:     *from,
		to:       *to,
		order:    *order,
		roles:    cfg.InferredRoles,
		progress: !*quiet,
	})
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	log.Printf("wrote %d row(s)", n)
}

// export builds the report and streams it as CSV, returning the number of rows.
func export(ctx context.Context, reader ports.EventReaderPort, w io.Writer, opts options) (int, error) {
	rules := aggregator.NewRegistrationRules(aggregator.RegistrationEventTypes(), opts.roles)
	uc := reportsUsecase.NewGetRegistrationReportUseCase(reader, rules, opts.timezone)

	report, err := uc.Execute(ctx, reportsUsecase.GetRegistrationReportInput{
		From:  opts.from,
		To:    opts.to,
		Order: opts.order,
	})
	if err != nil {
		return 0, err
	}
	var bar *progressbar.ProgressBar
	if opts.progress {
		bar = progressbar.Default(int64(len(report.Rows)), "rows")
	}

	cw := csvexport.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return 0, err
	}
	for i, row := range report.Rows {
		if err := cw.WriteRow(row); err != nil {
			return i, fmt.Errorf("row %s: %w", row.Date, err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if err := cw.Flush(); err != nil {
		return 0, err
	}
	return len(report.Rows), nil
}
