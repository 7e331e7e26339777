package output

import (
	"io"

	"github.com/matheuskafuri/readlater/internal/pocket"
)

// Sink receives structured output verbatim.
type Sink interface {
	WriteJSON(raw []byte) error
}

// JSONSink writes reply bytes exactly as received.
type JSONSink struct {
	w io.Writer
}

func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: w}
}

func (s *JSONSink) WriteJSON(raw []byte) error {
	_, err := s.w.Write(raw)
	return err
}

// Dispatcher renders a raw /v3/get reply in the configured format.
type Dispatcher struct {
	Format  Format
	Console *Console
	Sink    Sink
}

// Dispatch writes raw in d.Format. In JSON mode raw is never parsed. In human
// mode a reply Pocket marks as failed is reported to the user but is not an
// error.
func (d *Dispatcher) Dispatch(raw []byte) error {
	switch d.Format {
	case JSON:
		return d.Sink.WriteJSON(raw)
	default:
		return d.human(raw)
	}
}

func (d *Dispatcher) human(raw []byte) error {
	result, err := pocket.ParseListResult(raw)
	if err != nil {
		return err
	}

	outcome := result.Outcome()
	switch outcome.Kind {
	case pocket.Success:
		d.Console.Msg("Received %d articles.", len(outcome.Articles))
		for _, a := range outcome.Articles {
			d.Console.Article(a.ItemID, a.ResolvedTitle, a.ResolvedURL)
		}
	case pocket.RemoteFailure:
		d.Console.Warn("Receiving articles failed.")
	}
	return nil
}
