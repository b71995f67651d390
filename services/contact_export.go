package services

import (
	"fmt"
	"io"

	"defensa_juridica_web/models"

	"github.com/xuri/excelize/v2"
)

const contactSheet = "Contactos"

var contactExportHeaders = []string{
	"Fecha", "Nombre", "Email", "Teléfono", "Mensaje", "Estado", "ID proveedor", "Error", "IP",
}

// ExportContactsXLSX writes messages as a spreadsheet to w
func ExportContactsXLSX(w io.Writer, messages []models.ContactMessage) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", contactSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, h := range contactExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(contactSheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"C18F59"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(contactExportHeaders), 1)
	if err := f.SetCellStyle(contactSheet, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for r, m := range messages {
		row := []interface{}{
			m.CreatedAt.Format("2006-01-02 15:04"),
			m.Name,
			m.Email,
			m.Phone,
			m.Message,
			m.Status,
			m.ProviderID,
			m.DeliveryError,
			m.IPAddress,
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(contactSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r+2, err)
		}
	}

	if err := f.SetColWidth(contactSheet, "A", "A", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(contactSheet, "B", "D", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(contactSheet, "E", "E", 60); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}
