package extraction

import "context"

// Extractor turns unstructured content into raw event candidates via the reasoning engine.
type Extractor interface {
	// Extract makes exactly one engine call and returns the events in the order
	// the engine listed them. "No events" is a valid, non-error outcome.
	Extract(ctx context.Context, req Request) ([]RawEvent, error)
}
