package usecase

import (
	"calendar-converter/internal/extraction"
	"calendar-converter/internal/schedule"
	"calendar-converter/pkg/datemath"
	pkgLog "calendar-converter/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	extractor  extraction.Extractor
	dateMath   *datemath.Parser
	serializer schedule.Serializer
}

// New creates a new schedule UseCase instance.
func New(
	l pkgLog.Logger,
	extractor extraction.Extractor,
	dateMath *datemath.Parser,
	serializer schedule.Serializer,
) schedule.UseCase {
	return &implUseCase{
		l:          l,
		extractor:  extractor,
		dateMath:   dateMath,
		serializer: serializer,
	}
}
