package usecase

import (
	"fmt"

	"calendar-converter/config"
	"calendar-converter/internal/extraction"
	"calendar-converter/internal/schedule"
	"calendar-converter/pkg/datemath"
	"calendar-converter/pkg/icalendar"
	"calendar-converter/pkg/llmprovider"
	pkgLog "calendar-converter/pkg/log"
)

// NewFromConfig wires the full conversion pipeline from service config:
// providers -> manager -> extractor -> usecase with the .ics encoder.
func NewFromConfig(l pkgLog.Logger, cfg *config.Config) (schedule.UseCase, error) {
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("initialize llm providers: %w", err)
	}

	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		return nil, err
	}
	engine := llmprovider.NewManager(providers, managerCfg, l)

	extractor := extraction.New(l, engine, extraction.Config{
		MaxEvents:       cfg.Extraction.MaxEvents,
		Temperature:     cfg.Extraction.Temperature,
		MaxOutputTokens: cfg.Extraction.MaxOutputTokens,
	})

	return New(l, extractor, datemath.NewParser(), icalendar.NewEncoder(cfg.Calendar.ProductID)), nil
}
