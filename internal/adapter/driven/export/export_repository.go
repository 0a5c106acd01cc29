package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/dskyberg/instance-count/internal/domain/entity"
	"github.com/dskyberg/instance-count/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

var csvHeaders = []string{"Family", "Section", "Type", "Reserved", "In Use", "Delta", "Number"}

func (r *ExportRepositoryImpl) ExportToCSV(reports []entity.Reconciliation, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Write(csvHeaders)

	for _, rep := range reports {
		title := cleanRichTags(rep.Title)
		for _, row := range rep.Rows {
			writer.Write(deltaRecord(title, "delta", row))
		}
		writer.Write(deltaRecord(title, "total", rep.Total))

		for _, section := range rep.Expiring {
			name := "expires_" + section.Period.String()
			for _, row := range section.Rows {
				writer.Write([]string{title, name, cleanRichTags(row.Category), "", "", "", strconv.Itoa(row.Count)})
			}
			writer.Write([]string{title, name, "Total", "", "", "", strconv.Itoa(section.Total)})
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

func deltaRecord(title, section string, row entity.DeltaRow) []string {
	return []string{
		title,
		section,
		cleanRichTags(row.Category),
		strconv.Itoa(row.Reserved),
		strconv.Itoa(row.InUse),
		strconv.Itoa(row.Delta),
		"",
	}
}

func (r *ExportRepositoryImpl) ExportToJSON(reports []entity.Reconciliation, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(reports); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(reports []entity.Reconciliation, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{0, 128, 128}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	excessColor := [3]int{200, 30, 30}
	shortfallColor := [3]int{30, 60, 200}
	widths := []float64{70, 35, 35, 35}

	row := func(cols []string, bold bool, deltaColor [3]int) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		for j, col := range cols {
			align := "R"
			if j == 0 {
				align = "L"
			}
			if j == 3 {
				pdf.SetTextColor(deltaColor[0], deltaColor[1], deltaColor[2])
			} else {
				pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
			}
			pdf.CellFormat(widths[j], 7, tr(col), "B", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	colorFor := func(d entity.DeltaRow) [3]int {
		switch d.Direction() {
		case entity.DirectionExcess:
			return excessColor
		case entity.DirectionShortfall:
			return shortfallColor
		}
		return bodyTextColor
	}

	for i, rep := range reports {
		pdf.AddPage()

		// Header
		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 12, tr("  "+cleanRichTags(rep.Title)), "", 1, "L", true, 0, "")
		pdf.Ln(4)

		row([]string{"Type", "Reserved", "In Use", "Delta"}, true, bodyTextColor)
		for _, d := range rep.Rows {
			row([]string{d.Category, strconv.Itoa(d.Reserved), strconv.Itoa(d.InUse), strconv.Itoa(d.Delta)}, false, colorFor(d))
		}
		row([]string{"Total", strconv.Itoa(rep.Total.Reserved), strconv.Itoa(rep.Total.InUse), strconv.Itoa(rep.Total.Delta)}, true, colorFor(rep.Total))
		pdf.Ln(6)

		// Expirations
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		if !rep.HasExpiries {
			pdf.SetFont("Arial", "I", 10)
			pdf.Cell(0, 8, tr("No instances expire in the next 30 days"))
			pdf.Ln(8)
		}
		for _, section := range rep.Expiring {
			pdf.SetFont("Arial", "B", 12)
			pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
			pdf.Cell(0, 8, tr(sectionTitle(section.Period)))
			pdf.Ln(8)
			for _, e := range section.Rows {
				pdf.SetFont("Arial", "", 10)
				pdf.CellFormat(widths[0], 6, tr(e.Category), "", 0, "L", false, 0, "")
				pdf.CellFormat(widths[1], 6, strconv.Itoa(e.Count), "", 1, "R", false, 0, "")
			}
			pdf.SetFont("Arial", "B", 10)
			pdf.CellFormat(widths[0], 6, "Total", "T", 0, "L", false, 0, "")
			pdf.CellFormat(widths[1], 6, strconv.Itoa(section.Total), "T", 1, "R", false, 0, "")
			pdf.Ln(4)
		}

		// Footer
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Instance Count | %s", r.now().Format("2006-01-02"))), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", i+1)), "", 0, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF: %w", err)
	}
	return filepath.Abs(outputFilename)
}

func sectionTitle(p entity.Period) string {
	switch p {
	case entity.PeriodMonth:
		return "Expiring in the next 30 days"
	case entity.PeriodWeek:
		return "Expiring in the next 7 days"
	}
	return "Expiring today"
}

func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar tags do pterm e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}
