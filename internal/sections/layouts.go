package sections

import "github.com/ECB2020/Hobyah-sub001/internal/codec"

// Layout tables for the fixed-column forms. These mirror the print
// statements of SES v4.1: columns are 0-based, End exclusive, and a
// SkipBefore of 1 starts a new printed line. Decimals is the count the
// original report uses; the shoehorn may back off from it after
// conversion.

// Form 1B/1C: item counts and option switches. All integers, four
// printed lines.
var optionsLayout = []codec.Field{
	{SkipBefore: 1, Key: "numSegments", Start: 8, End: 14, Kind: "int", Gap: 14, Desc: "number of line segments"},
	{Key: "numVentShafts", Start: 28, End: 34, Kind: "int", Gap: 14, Desc: "number of vent shafts"},
	{Key: "numNodes", Start: 48, End: 54, Kind: "int", Gap: 14, Desc: "number of nodes"},
	{SkipBefore: 1, Key: "numFans", Start: 8, End: 14, Kind: "int", Gap: 14, Desc: "number of fans"},
	{Key: "numRoutes", Start: 28, End: 34, Kind: "int", Gap: 14, Desc: "number of train routes"},
	{Key: "numTrainTypes", Start: 48, End: 54, Kind: "int", Gap: 14, Desc: "number of train types"},
	{SkipBefore: 1, Key: "supOpt", Start: 8, End: 14, Kind: "int", Gap: 14, Desc: "supplementary print option"},
	{Key: "humidOpt", Start: 28, End: 34, Kind: "int", Gap: 14, Desc: "humidity print option"},
	{SkipBefore: 1, Key: "thermoOpt", Start: 8, End: 14, Kind: "int", Gap: 14, Desc: "thermodynamic option"},
	{Key: "fireOpt", Start: 28, End: 34, Kind: "int", Gap: 14, Desc: "fire simulation option"},
}

// Form 1F: ambient conditions, two data lines after a units caption.
var ambientLayout = []codec.Field{
	{SkipBefore: 1, Key: "ambientDryBulb", Start: 8, End: 18, Kind: "temp", Decimals: 2, Gap: 12, NearZero: "tempamb", Desc: "ambient dry-bulb temperature"},
	{Key: "ambientWetBulb", Start: 30, End: 40, Kind: "temp", Decimals: 2, Gap: 12, NearZero: "tempamb", Desc: "ambient wet-bulb temperature"},
	{SkipBefore: 1, Key: "ambientPressure", Start: 8, End: 18, Kind: "press", Decimals: 2, Gap: 12, Desc: "ambient barometric pressure"},
	{Key: "designDensity", Start: 30, End: 40, Kind: "dens", Decimals: 4, Gap: 12, Desc: "design air density"},
}

// Form 3 geometry line. The segment number may be printed as a
// composite "seg-sub" pair, so a dash immediately after the slot is
// tolerated (Gap 0).
var segmentLayout = []codec.Field{
	{SkipBefore: 1, Key: "segment", Start: 8, End: 15, Kind: "int", Gap: 0, Desc: "segment number"},
	{Key: "length", Start: 20, End: 30, Kind: "dist", Decimals: 2, Gap: 4, Desc: "segment length"},
	{Key: "area", Start: 34, End: 44, Kind: "area", Decimals: 2, Gap: 4, Desc: "cross-section area"},
	{Key: "perimeter", Start: 48, End: 58, Kind: "dist", Decimals: 2, Gap: 4, Desc: "perimeter"},
	{Key: "subsegments", Start: 62, End: 68, Kind: "int", Gap: 4, Desc: "subsegment count"},
}

// Form 3 subsegment row.
var subsegmentLayout = []codec.Field{
	{SkipBefore: 1, Key: "wallTemp", Start: 12, End: 22, Kind: "temp", Decimals: 2, Gap: 4, NearZero: "tempwall", Desc: "wall surface temperature"},
	{Key: "wetted", Start: 26, End: 36, Kind: "null", Decimals: 2, Gap: 4, Desc: "wetted wall fraction"},
}

// Form 3 steady-state heat sub-block, present only when fireOpt > 0.
var segmentHeatLayout = []codec.Field{
	{SkipBefore: 1, Key: "sensible", Start: 8, End: 20, Kind: "watts", Decimals: 1, Gap: 4, Desc: "sensible heat gain"},
	{Key: "latent", Start: 24, End: 36, Kind: "watts", Decimals: 1, Gap: 4, Desc: "latent heat gain"},
}

// Form 5: vent shafts, two lines each. Shaft numbers share the segment
// namespace.
var ventShaftLayout = []codec.Field{
	{SkipBefore: 1, Key: "shaft", Start: 8, End: 15, Kind: "int", Gap: 5, Desc: "vent shaft segment number"},
	{Key: "grateArea", Start: 20, End: 30, Kind: "area", Decimals: 2, Gap: 4, Desc: "grate open area"},
	{SkipBefore: 1, Key: "designFlow", Start: 20, End: 32, Kind: "flow", Decimals: 3, Gap: 4, Desc: "design volume flow"},
}

// Form 6: node connectivity, one line each. Zero marks an unused slot.
var nodeLayout = []codec.Field{
	{SkipBefore: 1, Key: "node", Start: 8, End: 14, Kind: "int", Gap: 10, Desc: "node number"},
	{Key: "seg1", Start: 24, End: 30, Kind: "int", Gap: 14, Desc: "first connected segment"},
	{Key: "seg2", Start: 44, End: 50, Kind: "int", Gap: 14, Desc: "second connected segment"},
	{Key: "seg3", Start: 64, End: 70, Kind: "int", Gap: 14, Desc: "third connected segment"},
}

// Form 7: fan characteristics, one line per running fan.
var fanLayout = []codec.Field{
	{SkipBefore: 1, Key: "fan", Start: 8, End: 14, Kind: "int", Gap: 6, Desc: "fan number"},
	{Key: "totalPressure", Start: 20, End: 30, Kind: "press", Decimals: 3, Gap: 4, Desc: "fan total pressure"},
	{Key: "ratedFlow", Start: 34, End: 46, Kind: "flow", Decimals: 3, Gap: 4, Desc: "rated volume flow"},
}

// Form 8 route header.
var routeLayout = []codec.Field{
	{SkipBefore: 1, Key: "route", Start: 8, End: 14, Kind: "int", Gap: 16, Desc: "route number"},
	{Key: "originOffset", Start: 30, End: 40, Kind: "dist", Decimals: 1, Gap: 4, Desc: "origin chainage offset"},
}

// Form 8 waypoint row, marked by THRU in columns 9-12.
var waypointLayout = []codec.Field{
	{SkipBefore: 1, Key: "segRef", Start: 16, End: 22, Kind: "int", Gap: 8, Desc: "traversed segment"},
	{Key: "distance", Start: 30, End: 40, Kind: "dist", Decimals: 1, Gap: 4, Desc: "distance along segment"},
}

// Form 9: train types, three lines each.
var trainTypeLayout = []codec.Field{
	{SkipBefore: 1, Key: "train", Start: 8, End: 14, Kind: "int", Gap: 6, Desc: "train type number"},
	{Key: "length", Start: 20, End: 30, Kind: "dist", Decimals: 1, Gap: 4, Desc: "train length"},
	{Key: "frontalArea", Start: 34, End: 44, Kind: "area", Decimals: 2, Gap: 4, Desc: "frontal area"},
	{SkipBefore: 1, Key: "mass", Start: 20, End: 32, Kind: "mass", Decimals: 1, Gap: 4, Desc: "gross mass"},
	{SkipBefore: 1, Key: "maxAccel", Start: 20, End: 30, Kind: "null", Decimals: 2, Gap: 4, Desc: "maximum acceleration"},
	{Key: "maxDecel", Start: 34, End: 44, Kind: "null", Decimals: 2, Gap: 4, Desc: "maximum deceleration"},
}

// Supplementary summary row, marked by AT TIME in columns 2-8 and
// present only when supOpt > 0.
var summaryLayout = []codec.Field{
	{SkipBefore: 1, Key: "time", Start: 10, End: 20, Kind: "null", Decimals: 1, Gap: 10, Desc: "simulation time"},
	{Key: "meanVelocity", Start: 30, End: 40, Kind: "velocity", Decimals: 2, Gap: 10, Desc: "mean air velocity"},
	{Key: "meanDryBulb", Start: 50, End: 60, Kind: "temp", Decimals: 2, Gap: 10, NearZero: "tempmat", Desc: "mean dry-bulb temperature"},
}

// Textual markers used by the sentinel and lookahead readers.
const (
	commentMark  = "C "
	commentCol   = 8
	thruMark     = "THRU"
	thruCol      = 8
	coastMark    = "COAST"
	coastCol     = 50
	fanOffMark   = "FAN IS SWITCHED OFF"
	summaryMark  = "AT TIME"
	summaryCol   = 1
)
