package models

// OtherLabel is the synthetic bucket that absorbs entries beyond Top-N.
const OtherLabel = "Other"

// Ellipsis marks a label truncated for display.
const Ellipsis = "…"

// DisplayRow is one chart-ready row: a shortened label next to the
// untruncated original, with the value series chosen by the metric.
type DisplayRow struct {
	// Label is the display label, shortened to the configured length.
	Label string `json:"label"`
	// Original is the unshortened label.
	Original string `json:"original"`
	// Value is the count or percentage, depending on the metric.
	Value float64 `json:"value"`
}

// DisplayTable is the Top-N-collapsed, label-shortened view of a
// FrequencyTable. The analytic table it was built from is unaffected.
type DisplayTable struct {
	// Question mirrors the source table's question.
	Question string `json:"question"`
	// ValueName names the value series ("count" or "percent").
	ValueName string `json:"value_name"`
	// Rows holds at most TopN rows plus one OtherLabel row.
	Rows []DisplayRow `json:"rows"`
}

// DisplayCrosstab is the label-shortened view of a Crosstab. Cells are
// copied so chart mutation cannot leak into the analytic matrix.
type DisplayCrosstab struct {
	// RowLabels are the shortened row labels.
	RowLabels []string `json:"row_labels"`
	// ColLabels are the shortened column labels.
	ColLabels []string `json:"col_labels"`
	// Cells is a copy of the source crosstab's metric view.
	Cells [][]float64 `json:"-"`
}
