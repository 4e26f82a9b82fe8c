// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "strings"

// VoteCategory is the closed set of recognized vote values. Raw ledger
// values are free text; NormalizeVote maps them here and everything
// downstream works on the category, never the raw string.
type VoteCategory int

const (
	VoteYes VoteCategory = iota
	VoteNo
	VoteAbstain
	VoteNotLoggedIn
	VoteRefrained
	VoteUnrecognized
)

// VoteCategories lists the recognized categories in fixed display order.
// VoteUnrecognized is deliberately absent: it never appears in output.
var VoteCategories = [5]VoteCategory{VoteYes, VoteNo, VoteAbstain, VoteNotLoggedIn, VoteRefrained}

// MajorityUndecided is returned when no category has a strictly highest count.
const MajorityUndecided = "Undecided"

// NormalizeVote maps a raw ledger vote value to its category,
// case-insensitively. Unknown values map to VoteUnrecognized and are
// dropped from tallies by callers (a data-quality tolerance, not an error).
func NormalizeVote(raw string) VoteCategory {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes":
		return VoteYes
	case "no":
		return VoteNo
	case "abstain":
		return VoteAbstain
	case "not logged in":
		return VoteNotLoggedIn
	case "refrained":
		return VoteRefrained
	default:
		return VoteUnrecognized
	}
}

// Label returns the display name used by the pie chart.
func (c VoteCategory) Label() string {
	switch c {
	case VoteYes:
		return "Yes"
	case VoteNo:
		return "No"
	case VoteAbstain:
		return "Abstain"
	case VoteNotLoggedIn:
		return "Not Logged"
	case VoteRefrained:
		return "Refrained"
	default:
		return "Unrecognized"
	}
}

// Fill returns the chart fill color for the category.
func (c VoteCategory) Fill() string {
	switch c {
	case VoteYes:
		return "#166534"
	case VoteNo:
		return "#7f1d1d"
	case VoteAbstain:
		return "#44403c"
	case VoteNotLoggedIn:
		return "#1c1917"
	case VoteRefrained:
		return "#44403c"
	default:
		return ""
	}
}

// majorityLabels maps each category to its summary label.
var majorityLabels = map[VoteCategory]string{
	VoteYes:         "Mostly Agreeable",
	VoteNo:          "Mostly Disagreeable",
	VoteAbstain:     "Mostly Abstained",
	VoteNotLoggedIn: "Mostly Not Logged In",
	VoteRefrained:   "Mostly Refrained",
}

// MajorityLabel summarizes a tally: the category with the strictly highest
// count wins; any tie at the maximum (including the all-zero five-way tie)
// yields MajorityUndecided.
func MajorityLabel(counts map[VoteCategory]int) string {
	max := counts[VoteCategories[0]]
	winner := VoteCategories[0]
	ties := 1

	for _, c := range VoteCategories[1:] {
		switch {
		case counts[c] > max:
			max = counts[c]
			winner = c
			ties = 1
		case counts[c] == max:
			ties++
		}
	}

	if ties > 1 {
		return MajorityUndecided
	}
	return majorityLabels[winner]
}
