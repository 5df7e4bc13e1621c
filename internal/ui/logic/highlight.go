package logic

import "gadgetfind/internal/domain"

// Highlight splits title around the first case-insensitive occurrence of query.
// Matched text keeps the title's casing. Empty segments are left out.
func Highlight(title, query string) []domain.Span {
	if query == "" {
		return []domain.Span{{Text: title}}
	}

	original := []rune(title)
	needle := foldRunes(query)
	start := indexFold(foldRunes(title), needle)
	if start < 0 {
		return []domain.Span{{Text: title}}
	}
	end := start + len(needle)

	spans := make([]domain.Span, 0, 3)
	if start > 0 {
		spans = append(spans, domain.Span{Text: string(original[:start])})
	}
	spans = append(spans, domain.Span{Text: string(original[start:end]), Matched: true})
	if end < len(original) {
		spans = append(spans, domain.Span{Text: string(original[end:])})
	}
	return spans
}
