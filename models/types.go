package models

// Request types

type TrackSearchRequest struct {
	PoliticianID int64  `json:"politicianId,omitempty"`
	Handle       string `json:"handle,omitempty"`
}

type CompletionRequest struct {
	Prompt string `json:"prompt"`
}

// Response types

type TrackSearchResponse struct {
	Success bool `json:"success"`
}

type MonthlyAttendance struct {
	Month                string  `json:"month"`
	AttendancePercentage float64 `json:"attendancePercentage"`
}

// VoteSlice is one pie-chart segment: a category name, its count and its
// fill color. Every category in the closed set appears, zero or not.
type VoteSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Fill  string `json:"fill"`
}

type VotingSummaryResponse struct {
	Data          []VoteSlice `json:"data"`
	MajorityLabel string      `json:"majorityLabel"`
	TotalVotes    int         `json:"totalVotes"`
}

type SearchResult struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Handle       string `json:"handle"`
	SearchCount  int64  `json:"searchCount"`
	LastSearched string `json:"lastSearched,omitempty"` // humanized, e.g. "3 minutes ago"
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

type CompletionResponse struct {
	Text string `json:"text"`
}

type SummaryResponse struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
	URL     string `json:"url,omitempty"`
}

type WebSearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

type WebSearchResponse struct {
	Results []WebSearchResult `json:"results"`
}

type VoteLogEntry struct {
	SessionID      string `json:"sessionId"`
	Date           string `json:"date,omitempty"`
	Time           string `json:"time,omitempty"`
	Title          string `json:"title"`
	MeetingDetails string `json:"meetingDetails,omitempty"`
	Vote           string `json:"vote"`
}

type VoteLogResponse struct {
	Results []VoteLogEntry `json:"results"`
}

// Domain types

type Politician struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Handle    string  `json:"handle"`
	Twitter   *string `json:"twitter,omitempty"`
	Wikipedia *string `json:"wikipedia,omitempty"`
}

// PartyAffiliation is a time-boxed party membership. ValidTo nil means the
// affiliation is current. Intervals for one politician must not overlap;
// the ingestion side owns that invariant, storage does not enforce it.
type PartyAffiliation struct {
	Party     string  `json:"party"`
	ValidFrom string  `json:"validFrom"`
	ValidTo   *string `json:"validTo,omitempty"`
}

type PoliticianProfile struct {
	Politician   Politician         `json:"politician"`
	Party        string             `json:"party,omitempty"` // current affiliation
	Affiliations []PartyAffiliation `json:"affiliations"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
