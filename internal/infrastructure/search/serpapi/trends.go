package serpapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"personal-brand-crew/internal/domain/entity"
)

const (
	trendsEngine   = "google_trends"
	noTrendsResult = "No good Trend Result was found"
)

type trendsTimeseriesResponse struct {
	InterestOverTime *struct {
		TimelineData []struct {
			Date   string `json:"date"`
			Values []struct {
				Query          string `json:"query"`
				ExtractedValue int    `json:"extracted_value"`
			} `json:"values"`
		} `json:"timeline_data"`
	} `json:"interest_over_time"`
}

type relatedQuery struct {
	Query string `json:"query"`
}

type trendsRelatedResponse struct {
	RelatedQueries struct {
		Rising []relatedQuery `json:"rising"`
		Top    []relatedQuery `json:"top"`
	} `json:"related_queries"`
}

// Trends summarizes Google Trends interest over time for query together with
// its rising and top related queries. It makes two requests.
func (c *Client) Trends(ctx context.Context, query string) (string, error) {
	if err := c.precheck(query); err != nil {
		return "", err
	}

	report, ok, err := c.trendReport(ctx, query)
	if err != nil {
		c.logger.Error("Trends failed", "query", query, "error", err)
		return "", err
	}
	if !ok {
		c.logger.Warn("Trends returned no timeline", "query", query)
		return noTrendsResult, nil
	}

	c.logger.Debug("Trends completed", "query", query, "points", len(report.Values))
	return FormatTrendReport(report), nil
}

func (c *Client) trendReport(ctx context.Context, query string) (entity.TrendReport, bool, error) {
	report := entity.TrendReport{Query: query}

	params := url.Values{}
	params.Set("engine", trendsEngine)
	params.Set("q", query)
	params.Set("data_type", "TIMESERIES")

	var series trendsTimeseriesResponse
	if err := c.get(ctx, "trends timeseries request", params, &series); err != nil {
		return report, false, err
	}
	if series.InterestOverTime == nil {
		return report, false, nil
	}

	for _, point := range series.InterestOverTime.TimelineData {
		if len(point.Values) == 0 {
			continue
		}
		if report.DateFrom == "" {
			report.DateFrom = point.Date
		}
		report.DateTo = point.Date
		report.Values = append(report.Values, point.Values[0].ExtractedValue)
	}
	if len(report.Values) == 0 {
		return report, false, nil
	}

	params = url.Values{}
	params.Set("engine", trendsEngine)
	params.Set("q", query)
	params.Set("data_type", "RELATED_QUERIES")

	var related trendsRelatedResponse
	if err := c.get(ctx, "trends related queries request", params, &related); err != nil {
		return report, false, err
	}
	report.RisingQueries = queries(related.RelatedQueries.Rising)
	report.TopQueries = queries(related.RelatedQueries.Top)

	return report, true, nil
}

func queries(list []relatedQuery) []string {
	out := make([]string, 0, len(list))
	for _, q := range list {
		if q.Query != "" {
			out = append(out, q.Query)
		}
	}
	return out
}

func FormatTrendReport(r entity.TrendReport) string {
	values := make([]string, 0, len(r.Values))
	for _, v := range r.Values {
		values = append(values, strconv.Itoa(v))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Query: %s\n", r.Query)
	fmt.Fprintf(&sb, "Date From: %s\n", r.DateFrom)
	fmt.Fprintf(&sb, "Date To: %s\n", r.DateTo)
	fmt.Fprintf(&sb, "Min Value: %d\n", r.Min())
	fmt.Fprintf(&sb, "Max Value: %d\n", r.Max())
	fmt.Fprintf(&sb, "Average Value: %.2f\n", r.Average())
	fmt.Fprintf(&sb, "Percent Change: %.2f%%\n", r.PercentChange())
	fmt.Fprintf(&sb, "Trend values: %s\n", strings.Join(values, ", "))
	fmt.Fprintf(&sb, "Rising Related Queries: %s\n", strings.Join(r.RisingQueries, ", "))
	fmt.Fprintf(&sb, "Top Related Queries: %s", strings.Join(r.TopQueries, ", "))
	return sb.String()
}
