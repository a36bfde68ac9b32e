package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateProposalPDF renders the client proposal using maroto/v2 and
// returns the raw PDF bytes.
func GenerateProposalPDF(data *ProposalData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addProposalHeader(m, data)
	addProposalClientBlock(m, data)
	addProposalLineItemsTable(m, data)
	addProposalTotals(m, data)
	addProposalTerms(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate proposal PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addProposalHeader adds the company name, "PROPOSAL" title, address line
// and quote number.
func addProposalHeader(m core.Maroto, data *ProposalData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("PROPOSAL", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("%s | %s", data.CompanyAddress, data.CompanyEmail), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Quote #: %s", data.QuoteNumber), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addProposalClientBlock adds client details on the left and quote metadata
// on the right.
func addProposalClientBlock(m core.Maroto, data *ProposalData) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}
	rightLabelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	rightValueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("PREPARED FOR", labelStyle)),
			col.New(6).Add(text.New("PROJECT", rightLabelStyle)),
		),
	)

	clientName := data.Client.Company
	if clientName == "" {
		clientName = data.Client.Name
	}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(clientName, props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
			col.New(3).Add(text.New("Project:", rightLabelStyle)),
			col.New(3).Add(text.New(data.ProjectName, rightValueStyle)),
		),
	)

	if data.Client.ContactName != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(6).Add(text.New("Attn: "+data.Client.ContactName, valueStyle)),
				col.New(3).Add(text.New("Date:", rightLabelStyle)),
				col.New(3).Add(text.New(data.QuoteDate, rightValueStyle)),
			),
		)
	} else {
		m.AddRows(
			row.New(7).Add(
				col.New(6),
				col.New(3).Add(text.New("Date:", rightLabelStyle)),
				col.New(3).Add(text.New(data.QuoteDate, rightValueStyle)),
			),
		)
	}

	contact := ""
	if data.Client.Email != "" {
		contact = data.Client.Email
	}
	if data.Client.Phone != "" {
		if contact != "" {
			contact += " | "
		}
		contact += data.Client.Phone
	}
	if contact != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New(contact, valueStyle)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addProposalLineItemsTable adds the priced scope-of-work table.
func addProposalLineItemsTable(m core.Maroto, data *ProposalData) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(5).Add(text.New("Scope of Work", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Area (sqft)", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("LOD", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Scope", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Price", headerText)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, item := range data.LineItems {
		bodyText := props.Text{Size: 7, Align: align.Center}
		bodyTextLeft := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		sqft := ""
		if item.Sqft > 0 {
			sqft = FormatSqft(item.Sqft)
		}

		colSINo := col.New(1).Add(text.New(fmt.Sprintf("%d", item.SINo), bodyText))
		colDesc := col.New(5).Add(text.New(item.Description, bodyTextLeft))
		colSqft := col.New(2).Add(text.New(sqft, bodyTextRight))
		colLOD := col.New(1).Add(text.New(item.LOD, bodyText))
		colScope := col.New(1).Add(text.New(item.Scope, bodyText))
		colPrice := col.New(2).Add(text.New(FormatUSD(item.Price), bodyTextRight))

		if cellStyle != nil {
			colSINo = colSINo.WithStyle(cellStyle)
			colDesc = colDesc.WithStyle(cellStyle)
			colSqft = colSqft.WithStyle(cellStyle)
			colLOD = colLOD.WithStyle(cellStyle)
			colScope = colScope.WithStyle(cellStyle)
			colPrice = colPrice.WithStyle(cellStyle)
		}

		m.AddRows(
			row.New(7).Add(colSINo, colDesc, colSqft, colLOD, colScope, colPrice),
		)
	}

	m.AddRows(row.New(2))
}

// addProposalTotals adds the category subtotals and the grand total band.
func addProposalTotals(m core.Maroto, data *ProposalData) {
	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	subtotals := []struct {
		label  string
		amount float64
	}{
		{"Modeling", data.SubtotalModeling},
		{"Services", data.SubtotalServices},
		{"Additional Elevations", data.SubtotalElevations},
		{"Travel", data.SubtotalTravel},
	}

	for _, s := range subtotals {
		if s.amount <= 0 {
			continue
		}
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(text.New(s.label, labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(FormatUSD(s.amount), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	if data.PaymentTermPremium > 0 {
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(text.New(fmt.Sprintf("Payment Terms (%s)", data.PaymentTerms), labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(FormatUSD(data.PaymentTermPremium), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	grandStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Total Investment", grandStyle)).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatUSD(data.GrandTotal), grandStyle)).WithStyle(grandCell),
		),
	)

	m.AddRows(row.New(3))
}

// addProposalTerms adds the acceptance note and payment terms line.
func addProposalTerms(m core.Maroto, data *ProposalData) {
	if data.PaymentTerms != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New("Payment Terms: "+data.PaymentTerms, props.Text{
					Size:  8,
					Style: fontstyle.Bold,
					Align: align.Left,
				})),
			),
		)
	}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("This proposal is valid for 30 days from the date above. Deliverables and schedule are confirmed at kickoff.", props.Text{
				Size:  7,
				Align: align.Left,
				Color: &props.Color{Red: 100, Green: 100, Blue: 100},
			})),
		),
	)
}
