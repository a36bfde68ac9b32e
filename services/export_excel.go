package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// QuoteWorkbookData holds the internal quote workbook inputs. Unlike the
// proposal PDF this is an internal document and includes upteam costs,
// risk multipliers, margin and the integrity verdict.
type QuoteWorkbookData struct {
	ProjectName string
	QuoteNumber string
	CreatedDate string

	Rows []QuoteWorkbookRow

	TotalClientPrice   float64
	TotalUpteamCost    float64
	PaymentTermPremium float64
	GrandTotal         float64
	GrossMarginPercent float64
	IntegrityStatus    string
}

// QuoteWorkbookRow is one line item in the workbook grid.
type QuoteWorkbookRow struct {
	Index          int
	Description    string
	Category       string
	Sqft           float64
	EffectiveSqft  float64
	LOD            string
	Scope          string
	RiskMultiplier float64
	ClientPrice    float64
	UpteamCost     float64
}

// WorkbookDataFromResult flattens a computed QuoteResult into workbook rows.
func WorkbookDataFromResult(projectName, quoteNumber, createdDate string, result QuoteResult) QuoteWorkbookData {
	data := QuoteWorkbookData{
		ProjectName:        projectName,
		QuoteNumber:        quoteNumber,
		CreatedDate:        createdDate,
		TotalClientPrice:   result.TotalClientPrice,
		TotalUpteamCost:    result.TotalUpteamCost,
		PaymentTermPremium: result.PaymentTermPremium,
		GrandTotal:         result.GrandTotal,
		GrossMarginPercent: result.GrossMarginPercent,
		IntegrityStatus:    string(result.IntegrityStatus),
	}
	for i, item := range result.LineItems {
		data.Rows = append(data.Rows, QuoteWorkbookRow{
			Index:          i + 1,
			Description:    item.Description,
			Category:       string(item.Category),
			Sqft:           item.Sqft,
			EffectiveSqft:  item.EffectiveSqft,
			LOD:            item.LOD,
			Scope:          string(item.Scope),
			RiskMultiplier: item.RiskMultiplier,
			ClientPrice:    item.ClientPrice,
			UpteamCost:     item.UpteamCost,
		})
	}
	return data
}

// GenerateQuoteExcel creates the internal quote workbook and returns the
// file contents as a byte slice.
func GenerateQuoteExcel(data QuoteWorkbookData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := data.ProjectName
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Quote"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 44, 12, 12, 12, 8, 10, 8, 14, 14}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	rowStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create row style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// Header rows.
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.ProjectName))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if data.QuoteNumber != "" {
		if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
			return nil, fmt.Errorf("merge quote number: %w", err)
		}
		f.SetCellValue(sheetName, "A2", "Quote: "+data.QuoteNumber)
		f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)
	}

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A3", "Date: "+data.CreatedDate)
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// Column headers on row 5.
	headers := []string{"#", "Description", "Category", "Sqft", "Eff. Sqft", "LOD", "Scope", "Risk", "Client Price", "Upteam Cost"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s5", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// Data rows from row 6.
	row := 6
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, r.Index)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.Description))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.Category))
		f.SetCellValue(sheetName, "D"+rowStr, r.Sqft)
		f.SetCellValue(sheetName, "E"+rowStr, r.EffectiveSqft)
		f.SetCellValue(sheetName, "F"+rowStr, sanitizeExcelCell(r.LOD))
		f.SetCellValue(sheetName, "G"+rowStr, sanitizeExcelCell(r.Scope))
		f.SetCellValue(sheetName, "H"+rowStr, r.RiskMultiplier)
		f.SetCellValue(sheetName, "I"+rowStr, FormatUSD(r.ClientPrice))
		f.SetCellValue(sheetName, "J"+rowStr, FormatUSD(r.UpteamCost))

		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, rowStyle)
		row++
	}

	// Summary block.
	row++

	summaries := []struct {
		label string
		value string
	}{
		{"Total Client Price:", FormatUSD(data.TotalClientPrice)},
		{"Total Upteam Cost:", FormatUSD(data.TotalUpteamCost)},
		{"Payment Term Premium:", FormatUSD(data.PaymentTermPremium)},
		{"Grand Total:", FormatUSD(data.GrandTotal)},
		{fmt.Sprintf("Gross Margin (%.1f%%):", data.GrossMarginPercent), ""},
		{"Integrity:", data.IntegrityStatus},
	}

	for _, s := range summaries {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "H"+rowStr, s.label)
		f.SetCellStyle(sheetName, "H"+rowStr, "H"+rowStr, summaryLabelStyle)
		if s.value != "" {
			f.SetCellValue(sheetName, "I"+rowStr, s.value)
			f.SetCellStyle(sheetName, "I"+rowStr, "I"+rowStr, summaryValueStyle)
		}
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
