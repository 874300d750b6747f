package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// Workbook sheet names.
const (
	SheetSummary = "Summary"
	SheetVendors = "Vendors"
	SheetStages  = "Best by Stage"
)

// XLSXFormatter writes the vendor comparison of an analysis as a spreadsheet.
type XLSXFormatter struct{}

// NewXLSXFormatter creates a spreadsheet formatter.
func NewXLSXFormatter() *XLSXFormatter {
	return &XLSXFormatter{}
}

// Format writes the analysis cost data as an .xlsx workbook.
func (f *XLSXFormatter) Format(w io.Writer, a *interfaces.Analysis) error {
	return WriteWorkbook(w, &a.Cost)
}

// WriteWorkbook writes a three-sheet vendor comparison: budget summary,
// adjusted stage costs per vendor in ranking order, and the cheapest vendor
// per stage.
func WriteWorkbook(w io.Writer, c *interfaces.CostAnalysis) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("report: workbook: %w", err)
	}
	for _, name := range []string{SheetVendors, SheetStages} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("report: workbook: %w", err)
		}
	}

	if err := writeRows(f, SheetSummary, summaryRows(c)); err != nil {
		return err
	}
	if err := writeRows(f, SheetVendors, vendorRows(c)); err != nil {
		return err
	}
	if err := writeRows(f, SheetStages, stageRows(c)); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("report: writing workbook: %w", err)
	}
	return nil
}

func summaryRows(c *interfaces.CostAnalysis) [][]any {
	in := c.Insights
	rows := [][]any{
		{"Metric", "Value"},
		{"Budget Fit", string(in.BudgetFit)},
		{"Budget Ratio", in.BudgetRatio},
		{"Total Budget (USD)", in.TotalBudget},
		{"Average Cost (USD)", in.AverageCost},
		{"Cost Spread (USD)", in.CostSpread},
		{"Best Vendor", string(in.BestVendor.Vendor)},
		{"Worst Vendor", string(in.WorstVendor.Vendor)},
		{"Savings (USD)", in.Savings},
		{"Mass Multiplier", c.Multipliers.Mass},
		{"Urgency Multiplier", c.Multipliers.Urgency},
		{"Altitude Multiplier", c.Multipliers.Altitude},
		{"Scale Multiplier", c.Multipliers.Scale},
	}
	for _, r := range in.RiskFactors {
		rows = append(rows, []any{"Risk Factor", r})
	}
	return rows
}

func vendorRows(c *interfaces.CostAnalysis) [][]any {
	header := []any{"Rank", "Vendor"}
	for _, st := range interfaces.Stages {
		header = append(header, string(st)+" (USD)")
	}
	header = append(header, "Weighted Total (USD)")

	adjusted := make(map[interfaces.Vendor]map[interfaces.Stage]int64, len(c.AdjustedCosts))
	for _, p := range c.AdjustedCosts {
		m := make(map[interfaces.Stage]int64, len(p.Stages))
		for _, sc := range p.Stages {
			m[sc.Stage] = sc.CostUSD
		}
		adjusted[p.Vendor] = m
	}

	rows := [][]any{header}
	for i, vt := range c.TotalByVendor {
		row := []any{i + 1, string(vt.Vendor)}
		for _, st := range interfaces.Stages {
			if v, ok := adjusted[vt.Vendor][st]; ok {
				row = append(row, v)
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, append(row, vt.Total))
	}
	return rows
}

func stageRows(c *interfaces.CostAnalysis) [][]any {
	rows := [][]any{{"Stage", "Weight", "Best Vendor", "Adjusted Cost (USD)"}}
	for _, st := range interfaces.Stages {
		best, ok := c.BestByStage[st]
		if !ok {
			continue
		}
		rows = append(rows, []any{string(st), c.Weights[st], string(best.Vendor), best.CostUSD})
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+1)
			if err != nil {
				return fmt.Errorf("report: workbook: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("report: workbook %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
