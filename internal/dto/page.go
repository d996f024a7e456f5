package dto

// PageLinks carries the navigation links of a page payload. Prev is omitted
// on the first page, next on the last.
type PageLinks struct {
	Current string  `json:"current"`
	Prev    *string `json:"prev,omitempty"`
	Next    *string `json:"next,omitempty"`
}

// TransactionPage is the envelope returned by the transaction search
// endpoint: a data slice, the pre-pagination row count, and navigation links
type TransactionPage struct {
	Data       []TransactionResponse `json:"data"`
	TotalCount int64                 `json:"total_count"`
	Links      PageLinks             `json:"links"`
}
