package model

// Boxscore mirrors the per-game statistics payload. Upstream feeds disagree
// on shape: some carry full roster arrays, some only per-category leader
// lists, some both. Extraction tolerates any mix.
type Boxscore struct {
	Home *TeamBox `json:"home,omitempty"`
	Away *TeamBox `json:"away,omitempty"`
}

// TeamBox is one side of a boxscore.
type TeamBox struct {
	Players []BoxPlayer            `json:"players,omitempty"`
	Leaders map[string][]BoxPlayer `json:"leaders,omitempty"`
}

// BoxPlayer is a raw player sub-record. Identity fields are populated
// inconsistently across feeds; see extract for the canonicalization order.
type BoxPlayer struct {
	ID         string    `json:"id,omitempty"`
	SRID       string    `json:"sr_id,omitempty"`
	Reference  string    `json:"reference,omitempty"`
	FullName   string    `json:"full_name,omitempty"`
	FirstName  string    `json:"first_name,omitempty"`
	LastName   string    `json:"last_name,omitempty"`
	Statistics *BoxStats `json:"statistics,omitempty"`
}

// BoxStats carries counting stats either nested under "total" or flat.
type BoxStats struct {
	Total   *StatLine `json:"total,omitempty"`
	Goals   int       `json:"goals,omitempty"`
	Assists int       `json:"assists,omitempty"`
}

// StatLine is the nested totals shape.
type StatLine struct {
	Goals   int `json:"goals"`
	Assists int `json:"assists"`
}

// GoalCount returns goals regardless of nesting; missing stats count as zero.
func (s *BoxStats) GoalCount() int {
	if s == nil {
		return 0
	}
	if s.Total != nil {
		return s.Total.Goals
	}
	return s.Goals
}

// AssistCount returns assists regardless of nesting; missing stats count as zero.
func (s *BoxStats) AssistCount() int {
	if s == nil {
		return 0
	}
	if s.Total != nil {
		return s.Total.Assists
	}
	return s.Assists
}
