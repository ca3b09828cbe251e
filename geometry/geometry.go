// Package geometry converts sequence lengths and positions into canvas pixel
// offsets. Every function is pure; zero-length inputs produce Inf or NaN and
// must be excluded by the caller.
package geometry

// Span is a pair of absolute pixel offsets.
type Span struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Width of the span in pixels.
func (s Span) Width() float64 {
	return s.End - s.Start
}

// PanelBounds holds the query and subject panels of a single hit track.
type PanelBounds struct {
	Query   Span `json:"query"`
	Subject Span `json:"subject"`
}

var paddingFactors = [...]float64{0, 2.5, 10, 15.5, 21, 29, 35, 41, 47}

// TextLegendPaddingFactor gets the horizontal offset used to centre a short
// numeric label under a tick mark.
func TextLegendPaddingFactor(label string) float64 {
	n := len(label)
	if n < 1 || n >= len(paddingFactors) {
		return 0
	}
	return paddingFactors[n]
}

// TotalPixels gets the width of a panel that is proportional to varLen,
// where the query and subject panels jointly fit in contentWidth minus the
// scoring column.
func TotalPixels(queryLen, subjLen, varLen, contentWidth, contentScoringWidth float64) float64 {
	return (varLen*contentWidth - contentScoringWidth) / (queryLen + subjLen)
}

// SimpleBounds gets the bounds of a single track with no query/subject split.
func SimpleBounds(contentWidth, contentLabelWidth, marginWidth float64) Span {
	return Span{
		Start: contentLabelWidth + marginWidth,
		End:   contentLabelWidth + contentWidth - marginWidth,
	}
}

// QuerySubjectBounds gets the query and subject panels for one hit. The panel
// split is fixed by queryLen and subjLen (the longest subject on display) while
// the subject track itself is scaled by subjHspLen, the length of this hit.
func QuerySubjectBounds(queryLen, subjLen, subjHspLen, contentWidth, contentScoringWidth,
	contentLabelWidth, marginWidth float64) PanelBounds {

	totalQuery := TotalPixels(queryLen, subjLen, queryLen, contentWidth, contentScoringWidth)
	totalSubj := TotalPixels(queryLen, subjLen, subjHspLen, contentWidth, contentScoringWidth)

	var b PanelBounds
	b.Query.Start = contentLabelWidth + marginWidth
	b.Query.End = contentLabelWidth + totalQuery - marginWidth
	b.Subject.Start = contentLabelWidth + totalQuery + contentScoringWidth + marginWidth
	b.Subject.End = b.Subject.Start + totalSubj - marginWidth
	return b
}

// DomainBounds maps the [startDomain, endDomain] range of a sequence of
// length hitLen onto [startPixels, endPixels]. The second value is a width,
// ready for use as a rectangle width. Equal start and end give a negative
// width.
func DomainBounds(startPixels, endPixels, hitLen, startDomain, endDomain, marginWidth float64) (float64, float64) {
	span := endPixels - startPixels
	start := startPixels + startDomain*span/hitLen + marginWidth
	end := startPixels + endDomain*span/hitLen - marginWidth
	return start, end - start
}
