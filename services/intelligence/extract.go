package ai

// Response is the decoded LLM reply. Providers fill whichever shape they produce:
// the flat OutputText convenience field, the nested Output items, both, or neither.
type Response struct {
	OutputText string       `json:"output_text"`
	Output     []OutputItem `json:"output"`
}

type OutputItem struct {
	Type    string        `json:"type"`
	Role    string        `json:"role,omitempty"`
	Content []ContentPart `json:"content"`
}

type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NoSuggestion is returned when no extractor finds text.
const NoSuggestion = "⚠️ No AI suggestion generated."

const (
	SourceFlat        = "output_text"
	SourceNested      = "output_content"
	SourcePlaceholder = "placeholder"
)

type extractor struct {
	source  string
	extract func(*Response) (string, bool)
}

// extractors are tried in order; the first one that finds non-empty text wins.
var extractors = []extractor{
	{source: SourceFlat, extract: flatText},
	{source: SourceNested, extract: nestedText},
}

func flatText(r *Response) (string, bool) {
	return r.OutputText, r.OutputText != ""
}

func nestedText(r *Response) (string, bool) {
	if len(r.Output) == 0 || len(r.Output[0].Content) == 0 {
		return "", false
	}
	text := r.Output[0].Content[0].Text
	return text, text != ""
}

// Extract returns the suggestion text and which shape it came from.
func Extract(r *Response) (string, string) {
	if r == nil {
		return NoSuggestion, SourcePlaceholder
	}
	for _, e := range extractors {
		if text, ok := e.extract(r); ok {
			return text, e.source
		}
	}
	return NoSuggestion, SourcePlaceholder
}
