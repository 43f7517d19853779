// Package nlp provides the linguistic-analysis dependency used for
// named-entity and noun-chunk extraction. The annotator is optional
// throughout the system: a nil or failing annotator degrades extraction to
// catalogue-only results instead of surfacing an error.
package nlp

import "context"

// Entity labels recognized by skill extraction. Anything else is ignored.
const (
	LabelOrganization = "ORG"
	LabelProduct      = "PRODUCT"
)

// Entity is a named entity detected in free text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Annotator abstracts the linguistic-analysis model.
type Annotator interface {
	// Entities returns the named entities found in text.
	Entities(ctx context.Context, text string) ([]Entity, error)
	// NounChunks returns short noun phrases found in text.
	NounChunks(ctx context.Context, text string) ([]string, error)
}
