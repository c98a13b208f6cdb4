package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"dirsweep/internal/exitcodes"
	"dirsweep/internal/history"
)

func main() {
	dbPath := flag.String("db", "", "Path to the sweep journal database")
	recent := flag.Int("recent", 0, "Show N most recent events")
	stats := flag.Bool("stats", false, "Show sweep statistics")
	action := flag.String("action", "", "Filter by action (REMOVE, DRY_RUN, SKIP, ERROR)")
	pathPattern := flag.String("path", "", "Filter by path pattern (SQL LIKE syntax)")
	limit := flag.Int("limit", 50, "Maximum rows for filtered queries")
	days := flag.Int("days", 30, "Number of days for statistics")
	jsonOutput := flag.Bool("json", false, "Output in JSON format")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "missing required -db flag")
		flag.Usage()
		os.Exit(exitcodes.UsageError)
	}

	db, err := history.NewSweepDB(*dbPath)
	if err != nil {
		log.Fatalf("ERROR: Failed to open database %s: %v", *dbPath, err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("ERROR: Failed to close database: %v", err)
		}
	}()

	switch {
	case *stats:
		showStats(db, *days, *jsonOutput)
	case *recent > 0:
		records, err := db.Recent(*recent)
		if err != nil {
			log.Fatalf("ERROR: Failed to query recent events: %v", err)
		}
		printRecords(records, *jsonOutput)
	case *action != "":
		records, err := db.ByAction(*action, *limit)
		if err != nil {
			log.Fatalf("ERROR: Failed to query by action: %v", err)
		}
		printRecords(records, *jsonOutput)
	case *pathPattern != "":
		records, err := db.ByPathPattern(*pathPattern, *limit)
		if err != nil {
			log.Fatalf("ERROR: Failed to query by path: %v", err)
		}
		printRecords(records, *jsonOutput)
	default:
		flag.Usage()
		fmt.Println("\nExamples:")
		fmt.Println("  dirsweep-query -db sweep.db -recent 10       # Show 10 most recent events")
		fmt.Println("  dirsweep-query -db sweep.db -stats           # Show sweep statistics")
		fmt.Println("  dirsweep-query -db sweep.db -action REMOVE   # Show removals only")
		fmt.Println("  dirsweep-query -db sweep.db -path '/tmp/%'   # Show events under /tmp")
		os.Exit(exitcodes.UsageError)
	}
}

func showStats(db *history.SweepDB, days int, jsonOutput bool) {
	stats, err := db.GetStats(days)
	if err != nil {
		log.Fatalf("ERROR: Failed to get statistics: %v", err)
	}

	if jsonOutput {
		data, _ := json.MarshalIndent(stats, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Sweep Statistics (Last %d days)\n", days)
	fmt.Printf("Period: %s to %s\n\n", stats.StartDate.Format("2006-01-02"), stats.EndDate.Format("2006-01-02"))
	fmt.Printf("Total Events:  %d\n", stats.Total)
	for action, count := range stats.ByAction {
		fmt.Printf("  %-10s %d\n", action, count)
	}
}

func printRecords(records []history.EventRecord, jsonOutput bool) {
	if jsonOutput {
		data, _ := json.MarshalIndent(records, "", "  ")
		fmt.Println(string(data))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tACTION\tPATH\tERROR")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			rec.Timestamp.Format("2006-01-02 15:04:05"), rec.Action, rec.Path, rec.ErrorMessage)
	}
	w.Flush()
}
