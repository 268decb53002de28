package boxscore

import "testing"

func TestSafeInt(t *testing.T) {
	cases := []struct {
		name  string
		value any
		def   int
		want  int
	}{
		{"nil uses default", nil, 0, 0},
		{"int passes through", 12, 0, 12},
		{"float truncates", 12.9, 0, 12},
		{"negative float truncates toward zero", -2.9, 0, -2},
		{"numeric string", "25", 0, 25},
		{"decimal string truncates", "25.7", 0, 25},
		{"whitespace string", " 14 ", 0, 14},
		{"garbage string uses default", "dnp", 0, 0},
		{"unsupported type uses default", true, 3, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SafeInt(tc.value, tc.def); got != tc.want {
				t.Fatalf("SafeInt(%v, %d) = %d, want %d", tc.value, tc.def, got, tc.want)
			}
		})
	}
}

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  float64
	}{
		{"mm:ss", "34:30", 34.5},
		{"zero seconds", "12:00", 12},
		{"plain numeric string", "20", 20},
		{"numeric value", 18.5, 18.5},
		{"malformed clock", "ab:cd", 0},
		{"garbage", "dnp", 0},
		{"nil", nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseMinutes(tc.value); got != tc.want {
				t.Fatalf("ParseMinutes(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestNormalize_MixedTypes(t *testing.T) {
	rec := PlayerRecord{
		"name":       "Test Player",
		"pts":        "31",
		"trb":        10.0,
		"ast":        8,
		"stl":        "2.0",
		"fg":         11.0,
		"fga":        "22",
		"mp":         "36:30",
		"plus_minus": "+12",
	}

	s := Normalize(rec)
	if s.Pts != 31 {
		t.Fatalf("pts = %d, want 31", s.Pts)
	}
	if s.Trb != 10 {
		t.Fatalf("trb = %d, want 10", s.Trb)
	}
	if s.Stl != 2 {
		t.Fatalf("stl = %d, want 2", s.Stl)
	}
	if s.Fga != 22 {
		t.Fatalf("fga = %d, want 22", s.Fga)
	}
	if s.Mp != 36.5 {
		t.Fatalf("mp = %v, want 36.5", s.Mp)
	}
	if s.PlusMinus != 12 {
		t.Fatalf("plus_minus = %d, want 12", s.PlusMinus)
	}
}

func TestNormalize_MissingFieldsDegradeToZero(t *testing.T) {
	s := Normalize(PlayerRecord{"name": "Bench Guy"})
	if s != (StatLine{}) {
		t.Fatalf("expected zero stat line, got %+v", s)
	}
}

func TestRoster_PrefersPlayersThenBasic(t *testing.T) {
	box := TeamBox{
		Players: []PlayerRecord{{"name": "A"}},
		Basic:   []PlayerRecord{{"name": "B"}},
	}
	roster := box.Roster()
	if len(roster) != 1 || roster[0].Name() != "A" {
		t.Fatalf("expected players roster, got %+v", roster)
	}

	box = TeamBox{Basic: []PlayerRecord{{"name": "B"}}}
	roster = box.Roster()
	if len(roster) != 1 || roster[0].Name() != "B" {
		t.Fatalf("expected basic fallback, got %+v", roster)
	}

	if got := (TeamBox{}).Roster(); len(got) != 0 {
		t.Fatalf("expected empty roster, got %+v", got)
	}
}
