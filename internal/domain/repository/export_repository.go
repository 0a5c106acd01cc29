package repository

import (
	"github.com/dskyberg/instance-count/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(reports []entity.Reconciliation, filename string, outputDir string) (string, error)
	ExportToJSON(reports []entity.Reconciliation, filename string, outputDir string) (string, error)
	ExportToPDF(reports []entity.Reconciliation, filename string, outputDir string) (string, error)
}
