package serpapi

import (
	"context"
	"net/url"
	"strconv"

	"personal-brand-crew/internal/domain/entity"
)

type searchResponse struct {
	OrganicResults []entity.SearchResult `json:"organic_results"`
	Error          string                `json:"error"`
}

// Search runs one Google search through SerpApi and returns the organic
// results as newline-joined text blocks.
func (c *Client) Search(ctx context.Context, query string) (string, error) {
	if err := c.precheck(query); err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("num", strconv.Itoa(c.resultCount))

	var resp searchResponse
	if err := c.get(ctx, "search request", params, &resp); err != nil {
		c.logger.Error("Search failed", "query", query, "error", err)
		return "", err
	}

	if resp.Error != "" && len(resp.OrganicResults) == 0 {
		c.logger.Warn("Search returned no results", "query", query, "providerError", resp.Error)
		return "", nil
	}

	text := FormatResults(resp.OrganicResults)
	c.logger.Debug("Search completed", "query", query, "results", len(resp.OrganicResults), "textLen", len(text))
	return text, nil
}
