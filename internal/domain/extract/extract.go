// Package extract normalizes heterogeneous boxscore payloads into canonical
// per-player performance records.
package extract

import (
	"sort"
	"strings"

	"github.com/mhladik/rinkrating/internal/domain/model"
)

// Extractor folds every player sub-record of a boxscore, roster arrays and
// leader category lists alike, into one de-duplicated record per player.
type Extractor struct {
	nameFallback bool
}

// New creates an extractor with configuration options.
func New(opts ...Option) *Extractor {
	x := &Extractor{
		nameFallback: true, // feeds without numeric identities are common
	}

	for _, opt := range opts {
		opt(x)
	}

	return x
}

// Extract returns the merged performance records for one event's boxscore.
// Records that resolve to no identity are dropped. Output order is
// first-seen order, which is deterministic for a given payload.
func (x *Extractor) Extract(box *model.Boxscore) []model.PerformanceRecord {
	if box == nil {
		return nil
	}

	merged := make(map[string]*model.PerformanceRecord)
	var order []string

	for _, team := range []*model.TeamBox{box.Home, box.Away} {
		if team == nil {
			continue
		}
		// Leader lists repeat roster players; merging by identity keeps each
		// player counted once.
		for _, cat := range sortedCategories(team.Leaders) {
			for i := range team.Leaders[cat] {
				x.accumulate(&team.Leaders[cat][i], merged, &order)
			}
		}
		for i := range team.Players {
			x.accumulate(&team.Players[i], merged, &order)
		}
	}

	out := make([]model.PerformanceRecord, 0, len(order))
	for _, id := range order {
		out = append(out, *merged[id])
	}
	return out
}

func (x *Extractor) accumulate(p *model.BoxPlayer, merged map[string]*model.PerformanceRecord, order *[]string) {
	name := DisplayName(p)
	if name == "" {
		// A record with no resolvable name can never be keyed or displayed.
		return
	}
	id := x.identity(p, name)
	if id == "" {
		return
	}

	goals := p.Statistics.GoalCount()
	assists := p.Statistics.AssistCount()

	if rec, ok := merged[id]; ok {
		rec.Goals += goals
		rec.Assists += assists
		return
	}
	merged[id] = &model.PerformanceRecord{
		PlayerID: id,
		Name:     name,
		Goals:    goals,
		Assists:  assists,
	}
	*order = append(*order, id)
}

// identity picks the canonical player identity with a fixed priority:
// opaque id, then sr_id, then reference, then the normalized full name.
func (x *Extractor) identity(p *model.BoxPlayer, name string) string {
	switch {
	case p.ID != "":
		return p.ID
	case p.SRID != "":
		return p.SRID
	case p.Reference != "":
		return p.Reference
	}
	if !x.nameFallback {
		return ""
	}
	return NormalizeName(name)
}

// DisplayName resolves the human-readable name of a raw player record.
func DisplayName(p *model.BoxPlayer) string {
	if p.FullName != "" {
		return p.FullName
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// NormalizeName lowercases and collapses whitespace so the same player keyed
// by name across feeds merges to one identity.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// sortedCategories returns leader category keys in lexical order so the
// extraction order does not depend on map iteration.
func sortedCategories(leaders map[string][]model.BoxPlayer) []string {
	if len(leaders) == 0 {
		return nil
	}
	cats := make([]string, 0, len(leaders))
	for cat := range leaders {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}
