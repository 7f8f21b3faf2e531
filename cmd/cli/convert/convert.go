package convert

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"calendar-converter/config"
	"calendar-converter/internal/model"
	"calendar-converter/internal/schedule"
	"calendar-converter/internal/schedule/usecase"
	"calendar-converter/pkg/datemath"
	"calendar-converter/pkg/log"
)

const (
	FormatICS  = "ics"
	FormatJSON = "json"
	FormatYAML = "yaml"

	stdoutPath = "-"
)

var (
	ErrNoInput       = errors.New("one of --text or --file is required")
	ErrTooManyInputs = errors.New("--text and --file are mutually exclusive")
)

// Options holds the parsed flags.
type Options struct {
	Text    string
	File    string
	Output  string
	Format  string
	Timeout time.Duration
}

var opts Options

var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert text or a file into a calendar",
	Long: `Extract events from --text or --file and write them out.

Image files (.jpg .jpeg .png .gif .bmp .webp) are read as pictures, anything
else as UTF-8 text. With --format ics (default) the result is written to
calendar.ics unless --output says otherwise; json and yaml print to stdout.`,
	Example: `  calconv convert --text "Dentist on 2024-03-15 at 14:00"
  calconv convert --file timetable.png --output spring.ics
  calconv convert --file notes.txt --format yaml`,
	RunE: runConvert,
}

func init() {
	Cmd.Flags().StringVarP(&opts.Text, "text", "t", "", "Schedule text to convert")
	Cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Path to a text or image file")
	Cmd.Flags().StringVarP(&opts.Output, "output", "o", "", `Output path ("-" for stdout)`)
	Cmd.Flags().StringVar(&opts.Format, "format", FormatICS, "Output format: ics, json or yaml")
	Cmd.Flags().DurationVar(&opts.Timeout, "timeout", 2*time.Minute, "Abort the conversion after this long")
}

func runConvert(cmd *cobra.Command, args []string) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: "console",
	})

	uc, err := usecase.NewFromConfig(logger, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)
	defer cancel()

	return Run(ctx, uc, opts, cmd.OutOrStdout())
}

// Validate checks flag combinations.
func (o Options) Validate() error {
	switch {
	case o.Text == "" && o.File == "":
		return ErrNoInput
	case o.Text != "" && o.File != "":
		return ErrTooManyInputs
	}

	switch o.Format {
	case FormatICS, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (want ics, json or yaml)", o.Format)
	}

	if o.Timeout <= 0 {
		return errors.New("--timeout must be positive")
	}
	return nil
}

// Run converts the input described by o and writes the result.
// stdout receives json/yaml output and ics output when Output is "-".
func Run(ctx context.Context, uc schedule.UseCase, o Options, stdout io.Writer) error {
	var (
		out schedule.ConvertOutput
		err error
	)

	if o.Text != "" {
		out, err = uc.ConvertText(ctx, schedule.ConvertTextInput{Text: o.Text})
	} else {
		var data []byte
		if data, err = os.ReadFile(o.File); err != nil {
			return fmt.Errorf("read %s: %w", o.File, err)
		}
		out, err = uc.ConvertFile(ctx, schedule.ConvertFileInput{Data: data, Filename: filepath.Base(o.File)})
	}
	if err != nil {
		return err
	}

	var payload []byte
	switch o.Format {
	case FormatJSON:
		payload, err = json.MarshalIndent(newEventList(out.Events), "", "  ")
		payload = append(payload, '\n')
	case FormatYAML:
		payload, err = yaml.Marshal(newEventList(out.Events))
	default:
		var file schedule.RenderOutput
		file, err = uc.Render(ctx, out.Events)
		payload = file.Data
		if o.Output == "" {
			o.Output = file.Filename
		}
	}
	if err != nil {
		return err
	}

	if o.Output == "" || o.Output == stdoutPath {
		_, err = stdout.Write(payload)
		return err
	}

	if err := os.WriteFile(o.Output, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", o.Output, err)
	}
	fmt.Fprintf(stdout, "Wrote %d event(s) to %s\n", len(out.Events), o.Output)
	return nil
}

type eventDTO struct {
	Title       string   `json:"title" yaml:"title"`
	Start       string   `json:"start" yaml:"start"`
	End         string   `json:"end" yaml:"end"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Location    string   `json:"location,omitempty" yaml:"location,omitempty"`
	Attendees   []string `json:"attendees,omitempty" yaml:"attendees,omitempty"`
}

type eventList struct {
	Events []eventDTO `json:"events" yaml:"events"`
}

func newEventList(events []model.CalendarEvent) eventList {
	list := eventList{Events: make([]eventDTO, 0, len(events))}
	for _, ev := range events {
		list.Events = append(list.Events, eventDTO{
			Title:       ev.Title,
			Start:       datemath.Format(ev.Start),
			End:         datemath.Format(ev.End),
			Description: ev.Description,
			Location:    ev.Location,
			Attendees:   ev.Attendees,
		})
	}
	return list
}
