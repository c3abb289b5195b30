package usecase

import (
	"context"
	"time"

	"navdb-service/internal/domain/entity"
	"navdb-service/internal/domain/repository"
	"navdb-service/pkg/logger"
	"navdb-service/pkg/xmlutil"
)

const effectiveDateLayout = "2006-01-02"

// CycleResolver determines the DataCycle a file belongs to from the
// document root attributes, creating the cycle row on first sight.
type CycleResolver struct {
	navRepo repository.NavigationRepository
	log     logger.Logger
}

// NewCycleResolver creates a new cycle resolver
func NewCycleResolver(navRepo repository.NavigationRepository, log logger.Logger) *CycleResolver {
	return &CycleResolver{
		navRepo: navRepo,
		log:     log,
	}
}

// Resolve reads the cycle code and effective date from the root element and
// gets or creates the matching DataCycle. A second file carrying an already
// known cycle code reuses the existing row without touching its dates or
// source.
func (r *CycleResolver) Resolve(ctx context.Context, root *xmlutil.Element) (*entity.DataCycle, error) {
	code, ok := root.Attr("cycle")
	if !ok || code == "" {
		return nil, entity.NewImportError(entity.KindMalformedInput, nil, "missing 'cycle' attribute on document root")
	}

	effectiveStr, ok := root.Attr("effective_date")
	if !ok || effectiveStr == "" {
		return nil, entity.NewImportError(entity.KindMalformedInput, nil, "missing 'effective_date' attribute on document root")
	}
	effective, err := time.Parse(effectiveDateLayout, effectiveStr)
	if err != nil {
		return nil, entity.NewImportError(entity.KindMalformedInput, err, "unparsable effective_date %q", effectiveStr)
	}

	source := "UNKNOWN"
	if el := root.Find(".//DATA_SOURCE"); el != nil && el.Text() != "" {
		source = el.Text()
	}

	cycle := &entity.DataCycle{
		CycleID:       code,
		EffectiveDate: effective,
		ExpiryDate:    effective.AddDate(0, 0, entity.CycleValidityDays),
		Source:        source,
	}

	resolved, created, err := r.navRepo.GetOrCreateDataCycle(ctx, cycle)
	if err != nil {
		return nil, entity.NewImportError(entity.KindPersistenceFailure, err, "resolving data cycle '%s'", code)
	}
	if created {
		r.log.Info("Created data cycle", "cycle", code, "effectiveDate", effectiveStr, "source", source)
	} else {
		r.log.Info("Reusing existing data cycle", "cycle", code)
	}
	return resolved, nil
}
