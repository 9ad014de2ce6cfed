// Package export renders catalogue data into downloadable documents.
package export

import (
	"io"

	"shop/internal/domain/entity"
	"shop/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/tealeg/xlsx"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	xlsxFileName    = "produits.xlsx"
	productSheet    = "Products"
)

var productHeaders = []string{"ID", "Name", "Price", "Category", "Quantity"}

type xlsxExporter struct{}

// NewXLSXExporter creates the spreadsheet exporter.
func NewXLSXExporter() service.ProductExporter {
	return &xlsxExporter{}
}

// Export writes one header row followed by one row per product.
func (e *xlsxExporter) Export(w io.Writer, products []*entity.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(productSheet)
	if err != nil {
		return errors.Wrap(err, "failed to create sheet")
	}

	headerRow := sheet.AddRow()
	for _, h := range productHeaders {
		headerRow.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetFloat(p.Price.InexactFloat64())
		row.AddCell().SetString(p.Category)
		row.AddCell().SetInt(p.Quantity)
	}

	if err := file.Write(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}

	return nil
}

func (e *xlsxExporter) ContentType() string {
	return xlsxContentType
}

func (e *xlsxExporter) FileName() string {
	return xlsxFileName
}
