package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// RenderXLSX lays the snapshot out as a workbook with one sheet per
// collection plus a summary sheet.
func (s *ExportServiceImpl) RenderXLSX(doc *Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, doc); err != nil {
		return nil, err
	}
	if err := writeLeadsSheet(f, doc); err != nil {
		return nil, err
	}
	if err := writeClientsSheet(f, doc); err != nil {
		return nil, err
	}
	if err := writeDealsSheet(f, doc); err != nil {
		return nil, err
	}
	if err := writeActivitiesSheet(f, doc); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, doc *Document) error {
	// Rename the default sheet instead of leaving an empty Sheet1 behind.
	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Export Date", doc.ExportDate},
		{"User", doc.User.Email},
		{},
		{"Total Leads", doc.Statistics.TotalLeads},
		{"Total Clients", doc.Statistics.TotalClients},
		{"Total Deals", doc.Statistics.TotalDeals},
		{"Total Activities", doc.Statistics.TotalActivities},
		{"Total Deal Value", doc.Statistics.TotalDealValue},
	}
	return writeRows(f, "Summary", rows)
}

func writeLeadsSheet(f *excelize.File, doc *Document) error {
	if _, err := f.NewSheet("Leads"); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"ID", "Name", "Email", "Phone", "Company", "Position", "Source", "Status", "Value", "Notes", "Created At"},
	}
	for _, l := range doc.Data.Leads {
		rows = append(rows, []interface{}{
			formatID(l.ID), l.Name, l.Email, l.Phone, l.Company, l.Position,
			l.Source, string(l.Status), l.Value, l.Notes, formatDate(l.CreatedAt),
		})
	}
	return writeRows(f, "Leads", rows)
}

func writeClientsSheet(f *excelize.File, doc *Document) error {
	if _, err := f.NewSheet("Clients"); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"ID", "Name", "Email", "Phone", "Company", "Position", "Address", "Status", "Total Value", "Last Contact", "Created At"},
	}
	for _, c := range doc.Data.Clients {
		rows = append(rows, []interface{}{
			formatID(c.ID), c.Name, c.Email, c.Phone, c.Company, c.Position, c.Address,
			string(c.Status), c.TotalValue, formatOptionalDate(c.LastContact), formatDate(c.CreatedAt),
		})
	}
	return writeRows(f, "Clients", rows)
}

func writeDealsSheet(f *excelize.File, doc *Document) error {
	if _, err := f.NewSheet("Deals"); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"ID", "Title", "Description", "Value", "Stage", "Probability", "Expected Close", "Lead ID", "Client ID", "Created At"},
	}
	for _, d := range doc.Data.Deals {
		rows = append(rows, []interface{}{
			formatID(d.ID), d.Title, d.Description, d.Value, string(d.Stage), d.Probability,
			formatOptionalDate(d.ExpectedCloseDate), d.LeadID, d.ClientID, formatDate(d.CreatedAt),
		})
	}
	return writeRows(f, "Deals", rows)
}

func writeActivitiesSheet(f *excelize.File, doc *Document) error {
	if _, err := f.NewSheet("Activities"); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"ID", "Type", "Title", "Description", "Created At"},
	}
	for _, a := range doc.Data.Activities {
		rows = append(rows, []interface{}{
			formatID(a.ID), string(a.Type), a.Title, a.Description, formatDate(a.CreatedAt),
		})
	}
	return writeRows(f, "Activities", rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
