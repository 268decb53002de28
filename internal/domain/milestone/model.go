package milestone

import "github.com/courtline/milestones/internal/domain/boxscore"

// Entry is one classified milestone achievement for one player in one game.
type Entry struct {
	MilestoneType string            `json:"milestone_type"`
	Player        string            `json:"player"`
	PlayerID      string            `json:"player_id"`
	Team          string            `json:"team"`
	Opponent      string            `json:"opponent"`
	GameID        string            `json:"game_id"`
	Date          string            `json:"date"`
	DateYYYYMMDD  string            `json:"date_yyyymmdd"`
	Side          string            `json:"side"`
	Stats         boxscore.StatLine `json:"stats"`
	Detail        string            `json:"detail"`
}

// PlayerGame identifies one player appearance: the entry fields shared by
// every milestone that appearance produces.
type PlayerGame struct {
	Player       string
	PlayerID     string
	Team         string
	Opponent     string
	GameID       string
	Date         string
	DateYYYYMMDD string
	Side         string
	Stats        boxscore.StatLine
}

// NewEntry builds an Entry for a player appearance. When DateYYYYMMDD is not
// supplied it is derived from the first 8 characters of GameID (game ids are
// YYYYMMDD plus home team code); the derivation happens here, once, and the
// value is never recomputed.
func NewEntry(pg PlayerGame, milestoneType, detail string) Entry {
	dateYYYYMMDD := pg.DateYYYYMMDD
	if dateYYYYMMDD == "" && len(pg.GameID) >= 8 {
		dateYYYYMMDD = pg.GameID[:8]
	}

	return Entry{
		MilestoneType: milestoneType,
		Player:        pg.Player,
		PlayerID:      pg.PlayerID,
		Team:          pg.Team,
		Opponent:      pg.Opponent,
		GameID:        pg.GameID,
		Date:          pg.Date,
		DateYYYYMMDD:  dateYYYYMMDD,
		Side:          pg.Side,
		Stats:         pg.Stats,
		Detail:        detail,
	}
}
