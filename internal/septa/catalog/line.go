package catalog

import (
	"github.com/mini-septa/poller/internal/septa/decode"
)

// Line is a Regional Rail line. There is no unrecognized Line: a name that
// does not resolve is a decode failure.
type Line int

const (
	LineAirport Line = iota + 1
	LineChestnutHillEast
	LineChestnutHillWest
	LineCenterCity
	LineCynwyd
	LineFoxChase
	LineLansdaleDoylestown
	LineMediaWawa
	LineManayunkNorristown
	LinePaoliThorndale
	LineTrenton
	LineWarminster
	LineWilmingtonNewark
	LineWestTrenton
)

type lineInfo struct {
	code  string
	names []string
}

var lineTable = map[Line]lineInfo{
	LineAirport:            {"AIR", []string{"Airport"}},
	LineChestnutHillEast:   {"CHE", []string{"Chestnut Hill East"}},
	LineChestnutHillWest:   {"CHW", []string{"Chestnut Hill West"}},
	LineCenterCity:         {"CC", []string{"Center City"}},
	LineCynwyd:             {"CYN", []string{"Cynwyd"}},
	LineFoxChase:           {"FOX", []string{"Fox Chase"}},
	LineLansdaleDoylestown: {"LAN", []string{"Lansdale/Doylestown", "Lansdale Doylestown", "Lansdale-Doylestown", "Lansdale", "Doylestown"}},
	LineMediaWawa:          {"MED", []string{"Media/Wawa", "Media Wawa", "Media-Wawa", "Media/Elwyn", "Media", "Wawa"}},
	LineManayunkNorristown: {"NOR", []string{"Manayunk/Norristown", "Manayunk Norristown", "Manayunk-Norristown", "Norristown", "Manayunk"}},
	LinePaoliThorndale:     {"PAO", []string{"Paoli/Thorndale", "Paoli Thorndale", "Paoli-Thorndale", "Paoli"}},
	LineTrenton:            {"TRE", []string{"Trenton"}},
	LineWarminster:         {"WAR", []string{"Warminster"}},
	LineWilmingtonNewark:   {"WIL", []string{"Wilmington/Newark", "Wilmington Newark", "Wilmington-Newark", "Wilmington", "Newark"}},
	LineWestTrenton:        {"WTR", []string{"West Trenton"}},
}

var lineNames = func() *decode.Table[Line] {
	table := decode.NewTable[Line]()
	for l := LineAirport; l <= LineWestTrenton; l++ {
		info := lineTable[l]
		table.Add(l, append(info.names, info.code)...)
	}
	return table
}()

// Lines returns every line in catalog order.
func Lines() []Line {
	return lineNames.Values()
}

// ResolveLine maps a line name or code to its Line.
func ResolveLine(name string) (Line, bool) {
	return lineNames.Lookup(name)
}

// ParseLine is ResolveLine reporting a miss as a *decode.Error.
func ParseLine(name string) (Line, error) {
	return decode.Enum(name, lineNames, nil)
}

// Code returns the GTFS route id, e.g. "PAO".
func (l Line) Code() string {
	return lineTable[l].code
}

func (l Line) String() string {
	info, ok := lineTable[l]
	if !ok {
		return "Line(?)"
	}
	return info.names[0]
}

func (l *Line) UnmarshalText(text []byte) error {
	v, err := ParseLine(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

func (l Line) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
