package boxscore

// PlayerRecord is the raw per-player mapping as it arrives from an upstream
// box-score document. Fields may be missing, numeric, or string-typed; use
// Normalize to obtain a StatLine.
type PlayerRecord map[string]any

// StatLine is the canonical numeric stat record for one player in one game.
// It is built once by Normalize and never mutated afterwards.
type StatLine struct {
	Pts       int     `json:"pts"`
	Trb       int     `json:"trb"`
	Ast       int     `json:"ast"`
	Stl       int     `json:"stl"`
	Blk       int     `json:"blk"`
	Fg        int     `json:"fg"`
	Fga       int     `json:"fga"`
	Fg3       int     `json:"fg3"`
	Fg3a      int     `json:"fg3a"`
	Ft        int     `json:"ft"`
	Fta       int     `json:"fta"`
	Orb       int     `json:"orb"`
	Drb       int     `json:"drb"`
	Pf        int     `json:"pf"`
	Tov       int     `json:"tov"`
	PlusMinus int     `json:"plus_minus"`
	Mp        float64 `json:"mp"`
}

// BasicInfo carries game-level metadata. DateYYYYMMDD is an alternate date key
// some upstream documents use instead of Date.
type BasicInfo struct {
	Date         string `json:"date"`
	DateYYYYMMDD string `json:"date_yyyymmdd"`
	HomeTeam     string `json:"home_team"`
	AwayTeam     string `json:"away_team"`
}

// TeamBox holds one side's player rows. Upstream documents use either a
// "players" or a "basic" key for the roster.
type TeamBox struct {
	Players []PlayerRecord `json:"players"`
	Basic   []PlayerRecord `json:"basic"`
}

// Roster returns the side's player rows, preferring "players" and falling back
// to "basic". Both absent yields an empty roster, never an error.
func (t TeamBox) Roster() []PlayerRecord {
	if len(t.Players) > 0 {
		return t.Players
	}
	return t.Basic
}

type BoxScore struct {
	Home TeamBox `json:"home"`
	Away TeamBox `json:"away"`
}

// Game is one game record of a classification batch. The first 8 characters of
// GameID are the YYYYMMDD game date.
type Game struct {
	GameID    string    `json:"game_id"`
	BasicInfo BasicInfo `json:"basic_info"`
	BoxScore  BoxScore  `json:"box_score"`
}

// Date returns the best available date string for the game.
func (g Game) Date() string {
	if g.BasicInfo.Date != "" {
		return g.BasicInfo.Date
	}
	return g.BasicInfo.DateYYYYMMDD
}

// Name returns the player's display name from a raw record.
func (p PlayerRecord) Name() string {
	name, _ := p["name"].(string)
	return name
}

// PlayerID returns the player's stable identifier from a raw record.
func (p PlayerRecord) PlayerID() string {
	id, _ := p["player_id"].(string)
	return id
}
