package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dskyberg/instance-count/internal/domain/entity"
	"github.com/dskyberg/instance-count/internal/domain/repository"
	"github.com/dskyberg/instance-count/internal/shared/types"
)

// InventoryFactory opens an inventory for the given profile and region.
type InventoryFactory func(ctx context.Context, profile, region string) (repository.InventoryRepository, error)

// RendererFactory returns the renderer for an output protocol.
type RendererFactory func(protocol types.Protocol) (repository.ReportRenderer, error)

// ReportUseCase compares running instances against reserved capacity.
type ReportUseCase struct {
	openInventory InventoryFactory
	newRenderer   RendererFactory
	exportRepo    repository.ExportRepository
	console       types.ConsoleInterface
	now           func() time.Time
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	openInventory InventoryFactory,
	newRenderer RendererFactory,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		openInventory: openInventory,
		newRenderer:   newRenderer,
		exportRepo:    exportRepo,
		console:       console,
		now:           time.Now,
	}
}

// SetClock replaces the clock expirations are measured against.
func (uc *ReportUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

// ResolveFamilies maps family names to families. No names means every family.
func ResolveFamilies(names []string) ([]entity.Family, error) {
	if len(names) == 0 {
		return entity.AllFamilies, nil
	}

	var families []entity.Family
	seen := make(map[entity.Family]bool)
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		family, err := entity.ParseFamily(name)
		if err != nil {
			return nil, err
		}
		if !seen[family] {
			seen[family] = true
			families = append(families, family)
		}
	}
	if len(families) == 0 {
		return nil, types.ErrNoFamilies
	}
	return families, nil
}

// RunReport renders one table per family to out and runs the configured exports.
func (uc *ReportUseCase) RunReport(ctx context.Context, args *types.CLIArgs, out io.Writer) error {
	families, err := ResolveFamilies(args.Families)
	if err != nil {
		return err
	}

	renderer, err := uc.newRenderer(args.Protocol)
	if err != nil {
		return err
	}

	inventory, err := uc.openInventory(ctx, args.Profile, args.Region)
	if err != nil {
		return err
	}

	accountID, err := inventory.GetAccountID(ctx)
	if err != nil {
		return err
	}
	uc.console.LogInfo("Counting instances for account %s", accountID)

	now := uc.now()
	reports := make([]entity.Reconciliation, 0, len(families))
	for _, family := range families {
		rec, err := uc.processFamily(ctx, inventory, renderer, family, now)
		if err != nil {
			return err
		}
		reports = append(reports, rec)
	}

	if err := renderer.Format(out); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	uc.exportReports(reports, args)
	return nil
}

func (uc *ReportUseCase) processFamily(
	ctx context.Context,
	inventory repository.InventoryRepository,
	renderer repository.ReportRenderer,
	family entity.Family,
	now time.Time,
) (entity.Reconciliation, error) {
	status := uc.console.Status(fmt.Sprintf("Collecting %s...", family.Title()))
	defer status.Stop()

	resources, err := inventory.ListResources(ctx, family)
	if err != nil {
		return entity.Reconciliation{}, err
	}

	status.Update(fmt.Sprintf("Collecting reserved %s...", family.Title()))
	reservations, err := inventory.ListReservations(ctx, family)
	if err != nil {
		return entity.Reconciliation{}, err
	}

	inUse := entity.CountResources(resources)
	reserved := entity.CountReservations(now, reservations)
	return renderer.FormatTable(family.Title(), inUse, reserved), nil
}

// exportReports grava os relatórios nos formatos configurados. Falhas são apenas registradas.
func (uc *ReportUseCase) exportReports(reports []entity.Reconciliation, args *types.CLIArgs) {
	if args.ReportName == "" {
		return
	}
	if len(args.ReportType) == 0 {
		uc.console.LogWarning("Report name %q given without a report type", args.ReportName)
		return
	}

	for _, reportType := range args.ReportType {
		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(reports, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(reports, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(reports, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type %q ignored", reportType)
		}
	}
}
