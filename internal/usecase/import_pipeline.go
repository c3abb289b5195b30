package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"navdb-service/internal/domain/entity"
	"navdb-service/internal/domain/repository"
	"navdb-service/pkg/logger"
	"navdb-service/pkg/metrics"
	"navdb-service/pkg/xmlutil"
)

// ImportPipeline loads one parsed ARINC 424 document into the store. The
// five entity sections run in a fixed order inside one transaction; a
// failure in any section rolls back every row written for the file.
type ImportPipeline struct {
	navRepo repository.NavigationRepository
	fields  *xmlutil.FieldExtractor
	metrics *metrics.Metrics
	log     logger.Logger
}

// NewImportPipeline creates a new import pipeline
func NewImportPipeline(
	navRepo repository.NavigationRepository,
	fields *xmlutil.FieldExtractor,
	m *metrics.Metrics,
	log logger.Logger,
) *ImportPipeline {
	return &ImportPipeline{
		navRepo: navRepo,
		fields:  fields,
		metrics: m,
		log:     log,
	}
}

// Run imports every section of the document for the given cycle. Procedure
// import runs last because it resolves airports written earlier in the same
// transaction.
func (p *ImportPipeline) Run(ctx context.Context, cycle *entity.DataCycle, root *xmlutil.Element) error {
	return p.navRepo.InTransaction(ctx, func(tx repository.NavigationRepository) error {
		if err := p.importAirports(ctx, tx, cycle, root.Find("AIRPORTS")); err != nil {
			return err
		}
		if err := p.importNavaids(ctx, tx, cycle, root.Find("NAVAIDS")); err != nil {
			return err
		}
		if err := p.importWaypoints(ctx, tx, cycle, root.Find("WAYPOINTS")); err != nil {
			return err
		}
		if err := p.importAirways(ctx, tx, cycle, root.Find("AIRWAYS")); err != nil {
			return err
		}
		return p.importProcedures(ctx, tx, cycle, root.Find("PROCEDURES"))
	})
}

func (p *ImportPipeline) importAirports(ctx context.Context, tx repository.NavigationRepository, cycle *entity.DataCycle, section *xmlutil.Element) error {
	if section == nil {
		p.log.Warn("No airports section found")
		return nil
	}

	p.log.Info("Importing airports")
	for _, el := range section.FindAll("AIRPORT") {
		airportID := p.fields.Text(el, "AIRPORT_IDENTIFIER")
		if airportID == nil {
			continue
		}

		reader := p.reader(el)
		airport := &entity.Airport{
			CycleID:            cycle.CycleID,
			AirportID:          *airportID,
			ICAOCode:           reader.text("ICAO_CODE"),
			Name:               reader.text("AIRPORT_NAME"),
			City:               reader.text("CITY_NAME"),
			State:              reader.text("STATE_CODE"),
			Country:            reader.text("COUNTRY_CODE"),
			Latitude:           reader.decimal(".//LATITUDE"),
			Longitude:          reader.decimal(".//LONGITUDE"),
			Elevation:          reader.integer("ELEVATION"),
			MagneticVariation:  reader.text("MAGNETIC_VARIATION"),
			TransitionAltitude: reader.integer("TRANSITION_ALTITUDE"),
			TransitionLevel:    reader.integer("TRANSITION_LEVEL"),
			LongestRunway:      reader.integer("LONGEST_RUNWAY"),
		}

		err := reader.err
		if err == nil {
			var created bool
			_, created, err = tx.UpsertAirport(ctx, airport)
			if created {
				p.countRow("airport")
			}
		}
		if err != nil {
			p.log.Error("Failed to import airport", "airportID", *airportID, "error", err)
			return p.wrapElementError(err, "airport '%s'", *airportID)
		}
	}
	p.log.Info("Finished importing airports")
	return nil
}

func (p *ImportPipeline) importNavaids(ctx context.Context, tx repository.NavigationRepository, cycle *entity.DataCycle, section *xmlutil.Element) error {
	if section == nil {
		p.log.Warn("No navaids section found")
		return nil
	}

	p.log.Info("Importing navaids")
	for _, el := range section.FindAll("NAVAID") {
		navaidID := p.fields.Text(el, "NAVAID_IDENTIFIER")
		if navaidID == nil {
			continue
		}

		reader := p.reader(el)
		navaid := &entity.Navaid{
			CycleID:           cycle.CycleID,
			NavaidID:          *navaidID,
			Name:              reader.text("NAVAID_NAME"),
			NavaidType:        entity.NavaidType(reader.enum("NAVAID_TYPE")),
			Frequency:         reader.decimal("NAVAID_FREQUENCY"),
			Latitude:          reader.decimal(".//LATITUDE"),
			Longitude:         reader.decimal(".//LONGITUDE"),
			Elevation:         reader.integer("ELEVATION"),
			MagneticVariation: reader.text("MAGNETIC_VARIATION"),
			DMELatitude:       reader.decimal(".//DME_POSITION/LATITUDE"),
			DMELongitude:      reader.decimal(".//DME_POSITION/LONGITUDE"),
			DMEElevation:      reader.integer(".//DME_POSITION/ELEVATION"),
			ServiceVolume:     reader.text("SERVICE_VOLUME"),
		}

		err := reader.err
		if err == nil {
			var created bool
			_, created, err = tx.UpsertNavaid(ctx, navaid)
			if created {
				p.countRow("navaid")
			}
		}
		if err != nil {
			p.log.Error("Failed to import navaid", "navaidID", *navaidID, "error", err)
			return p.wrapElementError(err, "navaid '%s'", *navaidID)
		}
	}
	p.log.Info("Finished importing navaids")
	return nil
}

func (p *ImportPipeline) importWaypoints(ctx context.Context, tx repository.NavigationRepository, cycle *entity.DataCycle, section *xmlutil.Element) error {
	if section == nil {
		p.log.Warn("No waypoints section found")
		return nil
	}

	p.log.Info("Importing waypoints")
	for _, el := range section.FindAll("WAYPOINT") {
		waypointID := p.fields.Text(el, "WAYPOINT_IDENTIFIER")
		if waypointID == nil {
			continue
		}

		reader := p.reader(el)
		waypoint := &entity.Waypoint{
			CycleID:                cycle.CycleID,
			WaypointID:             *waypointID,
			Name:                   reader.text("WAYPOINT_NAME"),
			WaypointType:           entity.WaypointType(reader.enum("WAYPOINT_TYPE")),
			Latitude:               reader.decimal(".//LATITUDE"),
			Longitude:              reader.decimal(".//LONGITUDE"),
			AirspaceClassification: reader.text("AIRSPACE_CLASSIFICATION"),
		}

		err := reader.err
		if err == nil {
			var created bool
			_, created, err = tx.UpsertWaypoint(ctx, waypoint)
			if created {
				p.countRow("waypoint")
			}
		}
		if err != nil {
			p.log.Error("Failed to import waypoint", "waypointID", *waypointID, "error", err)
			return p.wrapElementError(err, "waypoint '%s'", *waypointID)
		}
	}
	p.log.Info("Finished importing waypoints")
	return nil
}

// reader binds the field extractor to one element and remembers the first
// coercion error, which only ever surfaces in strict mode.
func (p *ImportPipeline) reader(el *xmlutil.Element) *fieldReader {
	return &fieldReader{fields: p.fields, el: el}
}

type fieldReader struct {
	fields *xmlutil.FieldExtractor
	el     *xmlutil.Element
	err    error
}

func (r *fieldReader) text(path string) *string {
	return r.fields.Text(r.el, path)
}

// enum reads an enumerated text field, empty when absent.
func (r *fieldReader) enum(path string) string {
	if s := r.fields.Text(r.el, path); s != nil {
		return *s
	}
	return ""
}

func (r *fieldReader) integer(path string) *int {
	v, err := r.fields.Int(r.el, path)
	r.keep(err)
	return v
}

func (r *fieldReader) decimal(path string) decimal.NullDecimal {
	v, err := r.fields.Decimal(r.el, path)
	r.keep(err)
	return v
}

func (r *fieldReader) keep(err error) {
	if r.err == nil {
		r.err = err
	}
}

// wrapElementError classifies a per-element failure as invalid-field or
// persistence failure; both abort the file.
func (p *ImportPipeline) wrapElementError(err error, format string, args ...interface{}) error {
	kind := entity.KindPersistenceFailure
	var invalid *xmlutil.InvalidFieldError
	if errors.As(err, &invalid) {
		kind = entity.KindInvalidField
	}
	p.countError(kind)
	return entity.NewImportError(kind, err, format, args...)
}

func (p *ImportPipeline) countRow(entityKind string) {
	if p.metrics != nil {
		p.metrics.RowsImported.WithLabelValues(entityKind).Inc()
	}
}

func (p *ImportPipeline) countError(kind entity.ErrorKind) {
	if p.metrics != nil {
		p.metrics.ImportErrors.WithLabelValues(string(kind)).Inc()
	}
}
