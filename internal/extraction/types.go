package extraction

// Kind tells the orchestrator how to dispatch a request to the engine.
type Kind int

const (
	KindText Kind = iota
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// Request is a single unit of content to extract events from.
// Content is set for KindText; Data and MIMEType for KindImage.
type Request struct {
	Kind     Kind
	Content  string
	Data     []byte
	MIMEType string
}

// NewTextRequest builds a text extraction request.
func NewTextRequest(content string) Request {
	return Request{Kind: KindText, Content: content}
}

// NewImageRequest builds an image extraction request.
func NewImageRequest(data []byte, mimeType string) Request {
	return Request{Kind: KindImage, Data: data, MIMEType: mimeType}
}

// RawEvent is an event candidate returned by the engine after field-by-field
// validation. Every field is optional; absent values are empty.
type RawEvent struct {
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	StartTime   string   `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime     string   `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	Location    string   `json:"location,omitempty" yaml:"location,omitempty"`
	Attendees   []string `json:"attendees,omitempty" yaml:"attendees,omitempty"`
}

// Config tunes extraction.
type Config struct {
	// MaxEvents bounds how many events one response may carry. Zero disables the bound.
	MaxEvents       int
	Temperature     float64
	MaxOutputTokens int
}
