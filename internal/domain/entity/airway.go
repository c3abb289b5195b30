package entity

// RouteType enumerates the supported airway route kinds.
type RouteType string

const (
	RouteJetway     RouteType = "JETWAY"
	RouteVictor     RouteType = "VICTOR"
	RouteRNAV       RouteType = "RNAV"
	RouteHelicopter RouteType = "HELICOPTER"
)

// FixType enumerates what kind of fix an airway segment endpoint refers to.
type FixType string

const (
	FixWaypoint FixType = "WAYPOINT"
	FixNavaid   FixType = "NAVAID"
	FixAirport  FixType = "AIRPORT"
)

// Airway is one enroute airway row, unique per (cycle, airway_id). Its
// geometry lives in the ordered AirwaySegment rows.
type Airway struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CycleID   string    `gorm:"column:cycle_id;size:10;not null;uniqueIndex:idx_airway_identity" json:"cycle_id"`
	Cycle     DataCycle `gorm:"foreignKey:CycleID;constraint:OnDelete:CASCADE" json:"-"`
	AirwayID  string    `gorm:"column:airway_id;size:10;not null;uniqueIndex:idx_airway_identity" json:"airway_id"`
	RouteType RouteType `gorm:"column:route_type;size:10" json:"route_type"`
}

// TableName overrides the default table name
func (Airway) TableName() string {
	return "airways"
}

// AirwaySegment is one leg of an airway, unique per (airway, sequence_number).
type AirwaySegment struct {
	ID                    uint    `gorm:"primaryKey" json:"id"`
	AirwayRowID           uint    `gorm:"column:airway_row_id;not null;uniqueIndex:idx_airway_segment_identity" json:"airway_row_id"`
	Airway                Airway  `gorm:"foreignKey:AirwayRowID;constraint:OnDelete:CASCADE" json:"-"`
	SequenceNumber        int     `gorm:"column:sequence_number;not null;uniqueIndex:idx_airway_segment_identity" json:"sequence_number"`
	FixIdentifier         *string `gorm:"column:fix_identifier;size:10" json:"fix_identifier"`
	FixType               FixType `gorm:"column:fix_type;size:10" json:"fix_type"`
	NextFixIdentifier     *string `gorm:"column:next_fix_identifier;size:10" json:"next_fix_identifier"`
	NextFixType           FixType `gorm:"column:next_fix_type;size:10" json:"next_fix_type"`
	RouteDistance         *int    `gorm:"column:route_distance" json:"route_distance"`
	MinimumAltitude       *int    `gorm:"column:minimum_altitude" json:"minimum_altitude"`
	MaximumAltitude       *int    `gorm:"column:maximum_altitude" json:"maximum_altitude"`
	MagneticCourse        *int    `gorm:"column:magnetic_course" json:"magnetic_course"`
	ReverseMagneticCourse *int    `gorm:"column:reverse_magnetic_course" json:"reverse_magnetic_course"`
}

// TableName overrides the default table name
func (AirwaySegment) TableName() string {
	return "airway_segments"
}
