package domain

// QueryInput is the public wire shape of FilterSpec
type QueryInput struct {
	ResultType  string `json:"result_type" validate:"required,oneof=job helper all"`
	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`
	Province    string `json:"province"`
	Q           string `json:"q"`
	PageSize    int    `json:"page_size" validate:"omitempty,min=1"`
	Cursor      string `json:"cursor"`
}

// SearchInput is the universal search wire shape
type SearchInput struct {
	Q        string `json:"q" validate:"required"`
	Province string `json:"province"`
	PageSize int    `json:"page_size" validate:"omitempty,min=1"`
	Cursor   string `json:"cursor"`
}

// PageOutput is the wire page, with the cursor rendered as an opaque token
// An absent cursor signals no further pages
type PageOutput struct {
	Items  []Listing `json:"items"`
	Cursor string    `json:"cursor,omitempty"`
}

// WirePage renders a Page for the wire
func WirePage(p Page) PageOutput {
	out := PageOutput{Items: p.Items}
	if out.Items == nil {
		out.Items = []Listing{}
	}
	if p.Cursor != nil {
		out.Cursor = p.Cursor.Token()
	}
	return out
}
