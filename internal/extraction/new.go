package extraction

import (
	"calendar-converter/pkg/llmprovider"
	pkgLog "calendar-converter/pkg/log"
)

type implExtractor struct {
	l      pkgLog.Logger
	engine llmprovider.Provider
	cfg    Config
}

// New creates an Extractor backed by the given engine (a single provider or a Manager).
func New(l pkgLog.Logger, engine llmprovider.Provider, cfg Config) Extractor {
	return &implExtractor{
		l:      l,
		engine: engine,
		cfg:    cfg,
	}
}
