package entity

// SearchResult is one organic hit returned by the search provider.
type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Complete reports whether title, link and snippet are all present.
func (r SearchResult) Complete() bool {
	return r.Title != "" && r.Link != "" && r.Snippet != ""
}

// TrendReport summarizes Google Trends interest over time for one query.
type TrendReport struct {
	Query         string
	DateFrom      string
	DateTo        string
	Values        []int
	RisingQueries []string
	TopQueries    []string
}

func (r TrendReport) Min() int {
	if len(r.Values) == 0 {
		return 0
	}
	m := r.Values[0]
	for _, v := range r.Values[1:] {
		m = min(m, v)
	}
	return m
}

func (r TrendReport) Max() int {
	if len(r.Values) == 0 {
		return 0
	}
	m := r.Values[0]
	for _, v := range r.Values[1:] {
		m = max(m, v)
	}
	return m
}

func (r TrendReport) Average() float64 {
	if len(r.Values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range r.Values {
		sum += v
	}
	return float64(sum) / float64(len(r.Values))
}

// PercentChange compares the last value with the first. A zero baseline
// yields the absolute difference.
func (r TrendReport) PercentChange() float64 {
	if len(r.Values) == 0 {
		return 0
	}
	first, last := r.Values[0], r.Values[len(r.Values)-1]
	if first == 0 {
		return float64(last - first)
	}
	return float64(last-first) / float64(first) * 100
}
