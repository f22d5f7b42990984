package services

import (
	"fmt"

	"github.com/alimgiray/gitfolio/internal/models"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Projects"

// ExportService builds a spreadsheet of the fetched repository list
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildWorkbook writes one row per repository into a new workbook,
// preserving the fetched order
func (s *ExportService) BuildWorkbook(repositories []*models.Repository) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := []string{"Name", "Description", "Language", "Stars", "Forks", "URL", "Homepage"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, repo := range repositories {
		values := []interface{}{
			repo.Name,
			stringOrEmpty(repo.Description),
			stringOrEmpty(repo.Language),
			repo.Stars,
			repo.Forks,
			repo.URL,
			stringOrEmpty(repo.HomepageURL),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell: %w", err)
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row+1, err)
			}
		}
	}

	return f, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
