package boxscore

import (
	"encoding/json"
	"strconv"
	"strings"
)

// SafeInt coerces a heterogeneous box-score value to an int. Integers pass
// through, floats truncate toward zero, strings are parsed as floats first
// (so "12.0" becomes 12) and then truncated. Anything unparseable, including
// nil, falls back to def. It never fails.
func SafeInt(value any, def int) int {
	switch v := value.(type) {
	case nil:
		return def
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float32:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return def
		}
		return int(parsed)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return def
		}
		return int(parsed)
	default:
		return def
	}
}

// SafeFloat coerces a heterogeneous value to a float64 with the same
// degradation rules as SafeInt.
func SafeFloat(value any, def float64) float64 {
	switch v := value.(type) {
	case nil:
		return def
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return def
		}
		return parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return def
		}
		return parsed
	default:
		return def
	}
}

// ParseMinutes converts a minutes-played value to decimal minutes. Numeric
// values pass through. "MM:SS" strings become minutes + seconds/60; plain
// numeric strings parse as floats. Malformed input yields 0.
func ParseMinutes(value any) float64 {
	switch v := value.(type) {
	case string:
		if strings.Contains(v, ":") {
			parts := strings.SplitN(v, ":", 2)
			minutes, err := strconv.Atoi(strings.TrimSpace(parts[0]))
			if err != nil {
				return 0
			}
			seconds, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err != nil {
				return 0
			}
			return float64(minutes) + float64(seconds)/60.0
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return SafeFloat(value, 0)
	}
}

// Normalize builds the canonical StatLine for a raw player record. Missing or
// malformed fields degrade to zero; normalization never fails a batch.
func Normalize(rec PlayerRecord) StatLine {
	return StatLine{
		Pts:       SafeInt(rec["pts"], 0),
		Trb:       SafeInt(rec["trb"], 0),
		Ast:       SafeInt(rec["ast"], 0),
		Stl:       SafeInt(rec["stl"], 0),
		Blk:       SafeInt(rec["blk"], 0),
		Fg:        SafeInt(rec["fg"], 0),
		Fga:       SafeInt(rec["fga"], 0),
		Fg3:       SafeInt(rec["fg3"], 0),
		Fg3a:      SafeInt(rec["fg3a"], 0),
		Ft:        SafeInt(rec["ft"], 0),
		Fta:       SafeInt(rec["fta"], 0),
		Orb:       SafeInt(rec["orb"], 0),
		Drb:       SafeInt(rec["drb"], 0),
		Pf:        SafeInt(rec["pf"], 0),
		Tov:       SafeInt(rec["tov"], 0),
		PlusMinus: SafeInt(rec["plus_minus"], 0),
		Mp:        ParseMinutes(rec["mp"]),
	}
}
