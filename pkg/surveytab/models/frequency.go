package models

// FrequencyRow is one entry of a frequency table: an original answer
// label with its count and percentage share.
type FrequencyRow struct {
	// Label is the original answer value (or NoAnswer).
	Label string `json:"label"`
	// Count is the number of observations (SA) or selections (MA).
	Count int `json:"count"`
	// Percent is Count relative to the table base, rounded to 1 decimal.
	Percent float64 `json:"percent"`
}

// FrequencyTable is a count/percentage breakdown for one question,
// sorted by descending count.
type FrequencyTable struct {
	// Question is the column or MA group the table was computed for.
	Question string `json:"question"`
	// Filter names the MA option column used to restrict the respondent
	// base, if any.
	Filter string `json:"filter,omitempty"`
	// Base is the percentage denominator: answered rows for SA tables,
	// total respondents for MA tables.
	Base int `json:"base"`
	// Total is the sum of all row counts.
	Total int `json:"total"`
	// MultiAnswer marks MA option tables, whose percentages are shares
	// of the respondent base and need not sum to 100.
	MultiAnswer bool `json:"multi_answer,omitempty"`
	// Rows holds the breakdown in descending count order.
	Rows []FrequencyRow `json:"rows"`
}
