package service

import (
	"io"

	"shop/internal/domain/entity"
)

// ProductExporter renders a product list into a downloadable document.
type ProductExporter interface {
	Export(w io.Writer, products []*entity.Product) error
	ContentType() string
	FileName() string
}
