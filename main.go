package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adventureworks/config"
	"github.com/adventureworks/database"
	"github.com/adventureworks/reports"
)

// runner renders one report against the snapshot as a named CSV table
type runner struct {
	name   string
	header []string
	run    func(s *reports.Snapshot, year int) ([][]string, error)
}

func main() {
	// Command line flags
	var (
		report = flag.String("report", "all", "Report to run (or 'all')")
		year   = flag.Int("year", 0, "Target year for the single-year reports (default: REPORT_YEAR)")
		out    = flag.String("out", "", "Output directory for CSV files (default: REPORT_OUTPUT_DIR)")
		help   = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *year == 0 {
		*year = cfg.Report.Year
	}
	if *out == "" {
		*out = cfg.Report.OutputDir
	}

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatalf("Database connection check failed: %v", err)
	}

	// Materialize the snapshot, then release the connection: the reports
	// themselves never touch the database.
	snap, err := database.LoadSnapshot(database.DB)
	if err != nil {
		log.Fatalf("Failed to load snapshot: %v", err)
	}
	if err := database.Close(); err != nil {
		log.Printf("Warning: failed to close database: %v", err)
	}

	selected, err := selectRunners(*report)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	for _, r := range selected {
		rows, err := r.run(snap, *year)
		if err != nil {
			// One report failing must not stop the others.
			log.Printf("Report %s failed: %v", r.name, err)
			continue
		}
		path := filepath.Join(*out, r.name+".csv")
		if err := writeCSV(path, r.header, rows); err != nil {
			log.Printf("Report %s: failed to write %s: %v", r.name, path, err)
			continue
		}
		log.Printf("Report %s: %d rows -> %s", r.name, len(rows), path)
	}
}

var runners = []runner{
	{
		name:   "subcategory_monthly_sales",
		header: []string{"month", "subcategory", "qty_item", "total_sales", "order_cnt"},
		run: func(s *reports.Snapshot, _ int) ([][]string, error) {
			rows, err := reports.SubcategoryMonthlySales(s)
			if err != nil {
				return nil, err
			}
			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, []string{r.Month, r.Subcategory, itoa(r.Qty), r.Sales.String(), itoa(r.OrderCount)})
			}
			return out, nil
		},
	},
	{
		name:   "subcategory_yoy_growth",
		header: []string{"subcategory", "year", "qty_item", "prv_qty", "qty_diff", "rank"},
		run: func(s *reports.Snapshot, _ int) ([][]string, error) {
			rows, err := reports.SubcategoryYoYGrowth(s)
			if err != nil {
				return nil, err
			}
			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, []string{r.Subcategory, itoa(r.Year), itoa(r.Qty), itoa(r.PrevQty), r.Growth.String(), itoa(r.Rank)})
			}
			return out, nil
		},
	},
	{
		name:   "top_territories",
		header: []string{"year", "territory_id", "order_qty", "rank"},
		run: func(s *reports.Snapshot, _ int) ([][]string, error) {
			rows, err := reports.TopTerritories(s)
			if err != nil {
				return nil, err
			}
			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, []string{itoa(r.Year), itoa(int(r.TerritoryID)), itoa(r.Qty), itoa(r.Rank)})
			}
			return out, nil
		},
	},
	{
		name:   "seasonal_discount_cost",
		header: []string{"year", "subcategory", "total_cost"},
		run: func(s *reports.Snapshot, _ int) ([][]string, error) {
			rows, err := reports.SeasonalDiscountCost(s)
			if err != nil {
				return nil, err
			}
			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, []string{itoa(r.Year), r.Subcategory, r.Cost.String()})
			}
			return out, nil
		},
	},
	{
		name:   "customer_retention",
		header: []string{"month_join", "month_offset", "month_diff", "customer_cnt"},
		run: func(s *reports.Snapshot, year int) ([][]string, error) {
			rows, err := reports.CustomerRetention(s, year)
			if err != nil {
				return nil, err
			}
			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, []string{itoa(r.CohortMonth), itoa(r.MonthOffset), r.OffsetLabel, itoa(r.Customers)})
			}
			return out, nil
		},
	},
	{
		name:   "stock_trend",
		header: []string{"product", "month", "year", "stock_qty", "mom_pct"},
		run: func(s *reports.Snapshot, year int) ([][]string, error) {
			rows, err := reports.StockTrend(s, year)
			if err != nil {
				return nil, err
			}
			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, []string{r.Product, itoa(r.Month), itoa(r.Year), itoa(r.Stocked), r.PctChange.String()})
			}
			return out, nil
		},
	},
	{
		name:   "stock_sales_ratio",
		header: []string{"month", "year", "product", "stock_qty", "sales_qty", "ratio"},
		run: func(s *reports.Snapshot, year int) ([][]string, error) {
			rows, err := reports.StockSalesRatio(s, year)
			if err != nil {
				return nil, err
			}
			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				ratio := "" // blank means undefined: no sales that month
				if r.Ratio != nil {
					ratio = r.Ratio.String()
				}
				out = append(out, []string{itoa(r.Month), itoa(r.Year), r.Product, itoa(r.Stock), itoa(r.Sales), ratio})
			}
			return out, nil
		},
	},
	{
		name:   "purchase_backlog",
		header: []string{"year", "status", "order_cnt", "value"},
		run: func(s *reports.Snapshot, year int) ([][]string, error) {
			rows, err := reports.PurchaseOrderBacklog(s, year)
			if err != nil {
				return nil, err
			}
			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, []string{itoa(r.Year), itoa(int(r.Status)), itoa(r.OrderCount), r.Value.String()})
			}
			return out, nil
		},
	},
}

func selectRunners(name string) ([]runner, error) {
	if name == "all" {
		return runners, nil
	}
	for _, r := range runners {
		if r.name == name {
			return []runner{r}, nil
		}
	}
	names := make([]string, 0, len(runners))
	for _, r := range runners {
		names = append(names, r.name)
	}
	return nil, fmt.Errorf("unknown report %q; available: %v", name, names)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func showHelp() {
	log.Println(`
Bicycle Manufacturer Sales Analysis

Usage:
  go run main.go [options]

Options:
  -report <name>  Run a single report (default: all)
  -year <year>    Target year for the single-year reports
  -out <dir>      Directory for the CSV exports
  -help           Show this help message

Reports:
  subcategory_monthly_sales   Last-12-months performance per subcategory
  subcategory_yoy_growth      Top-3 subcategories by YoY quantity growth
  top_territories             Top-3 territories by order quantity per year
  seasonal_discount_cost      Seasonal discount cost per subcategory/year
  customer_retention          Monthly retention cohort of shipped orders
  stock_trend                 Stock level trend with MoM percentage
  stock_sales_ratio           Stock-to-sales ratio per product/month
  purchase_backlog            Pending purchase-order backlog

For schema setup, use:
  go run cmd/migrate/main.go

For sample data, use:
  go run cmd/seed/main.go`)
}
