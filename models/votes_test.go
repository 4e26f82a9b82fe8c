// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "testing"

func TestNormalizeVote(t *testing.T) {
	tests := []struct {
		raw  string
		want VoteCategory
	}{
		{"Yes", VoteYes},
		{"yes", VoteYes},
		{"YES", VoteYes},
		{"No", VoteNo},
		{"Abstain", VoteAbstain},
		{"Not logged in", VoteNotLoggedIn},
		{"NOT LOGGED IN", VoteNotLoggedIn},
		{"Refrained", VoteRefrained},
		{"  yes  ", VoteYes},
		{"", VoteUnrecognized},
		{"present", VoteUnrecognized},
		{"ano", VoteUnrecognized},
	}

	for _, tt := range tests {
		if got := NormalizeVote(tt.raw); got != tt.want {
			t.Errorf("NormalizeVote(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestMajorityLabel(t *testing.T) {
	tests := []struct {
		name   string
		counts map[VoteCategory]int
		want   string
	}{
		{
			name:   "clear winner",
			counts: map[VoteCategory]int{VoteYes: 5, VoteNo: 1},
			want:   "Mostly Agreeable",
		},
		{
			name:   "two-way tie",
			counts: map[VoteCategory]int{VoteYes: 3, VoteNo: 3},
			want:   MajorityUndecided,
		},
		{
			name:   "all zero is a five-way tie",
			counts: map[VoteCategory]int{},
			want:   MajorityUndecided,
		},
		{
			name:   "not logged in dominates",
			counts: map[VoteCategory]int{VoteYes: 2, VoteNotLoggedIn: 7},
			want:   "Mostly Not Logged In",
		},
		{
			name:   "refrained dominates",
			counts: map[VoteCategory]int{VoteRefrained: 1},
			want:   "Mostly Refrained",
		},
		{
			name:   "tie below the max does not matter",
			counts: map[VoteCategory]int{VoteYes: 4, VoteNo: 2, VoteAbstain: 2},
			want:   "Mostly Agreeable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MajorityLabel(tt.counts); got != tt.want {
				t.Errorf("MajorityLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVoteCategoryLabelsAndFills(t *testing.T) {
	for _, c := range VoteCategories {
		if c.Label() == "" || c.Label() == "Unrecognized" {
			t.Errorf("category %v has no display label", c)
		}
		if c.Fill() == "" {
			t.Errorf("category %v has no fill color", c)
		}
	}
	if VoteUnrecognized.Fill() != "" {
		t.Error("unrecognized votes must not get a chart color")
	}
}
