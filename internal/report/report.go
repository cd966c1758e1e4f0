// Package report derives the damage-only report view from an inspection
// snapshot and handles the snapshot's URL transport encoding.
package report

import (
	"time"

	"github.com/erazemk/ogled/internal/model"
)

// Verdict is the overall outcome of an inspection.
type Verdict string

// Verdicts.
const (
	VerdictAllGood     Verdict = "all_good"
	VerdictIssuesFound Verdict = "issues_found"
)

// Label returns the display text for a verdict.
func (v Verdict) Label() string {
	switch v {
	case VerdictAllGood:
		return "All Good"
	case VerdictIssuesFound:
		return "Issues Found"
	default:
		return string(v)
	}
}

// DamagedRoom is a room reduced to its damaged items.
type DamagedRoom struct {
	Name  string       `json:"name"`
	Items []model.Item `json:"items"`
}

// View is the damage-only projection of an inspection. It is derived, never
// stored: recompute it from the snapshot whenever needed. Source fields are
// carried through even when empty; renderers hide empty ones. Photo ids are
// carried unresolved; resolving them to bytes is the export layer's job.
type View struct {
	Timestamp    time.Time     `json:"ts"`
	Address      string        `json:"address"`
	Tenant       string        `json:"tenant"`
	Landlord     string        `json:"landlord"`
	GeneralNotes string        `json:"notes"`
	DamagedRooms []DamagedRoom `json:"damaged_rooms"`
	Verdict      Verdict       `json:"verdict"`
}

// Project reduces an inspection snapshot to its damage-only view: rooms
// keep only their damaged items in original order, rooms left empty are
// dropped, and the verdict is AllGood exactly when nothing remains.
func Project(insp model.Inspection) View {
	view := View{
		Timestamp:    insp.Timestamp,
		Address:      insp.Address,
		Tenant:       insp.Tenant,
		Landlord:     insp.Landlord,
		GeneralNotes: insp.GeneralNotes,
		DamagedRooms: []DamagedRoom{},
		Verdict:      VerdictAllGood,
	}

	for _, room := range insp.Rooms {
		var damaged []model.Item
		for _, item := range room.Items {
			if item != nil && item.Damaged() {
				damaged = append(damaged, *item)
			}
		}
		if len(damaged) == 0 {
			continue
		}

		name := room.Name
		if name == "" {
			name = "Room"
		}
		view.DamagedRooms = append(view.DamagedRooms, DamagedRoom{Name: name, Items: damaged})
	}

	if len(view.DamagedRooms) > 0 {
		view.Verdict = VerdictIssuesFound
	}
	return view
}
