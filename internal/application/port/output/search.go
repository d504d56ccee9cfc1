package output

import "context"

type SearchPort interface {
	Search(ctx context.Context, query string) (string, error)
}

type TrendsPort interface {
	Trends(ctx context.Context, query string) (string, error)
}
