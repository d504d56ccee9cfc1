package serpapi

import (
	"iter"
	"strings"

	"personal-brand-crew/internal/domain/entity"
)

const (
	blockSeparator = "\n"
	blockFooter    = "-----------------"
)

// candidates yields results in provider order. The sequence can be ranged
// over any number of times.
func candidates(results []entity.SearchResult) iter.Seq[entity.SearchResult] {
	return func(yield func(entity.SearchResult) bool) {
		for _, r := range results {
			if !yield(r) {
				return
			}
		}
	}
}

func filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

func mapSeq[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

func formatResult(r entity.SearchResult) string {
	return "Title: " + r.Title + "\nLink: " + r.Link + "\nSnippet: " + r.Snippet + "\n" + blockFooter
}

func join(seq iter.Seq[string], sep string) string {
	var sb strings.Builder
	first := true
	for s := range seq {
		if !first {
			sb.WriteString(sep)
		}
		sb.WriteString(s)
		first = false
	}
	return sb.String()
}

// FormatResults drops incomplete results, formats the rest and joins them
// with a newline. No survivors yields the empty string.
func FormatResults(results []entity.SearchResult) string {
	complete := filter(candidates(results), entity.SearchResult.Complete)
	return join(mapSeq(complete, formatResult), blockSeparator)
}
