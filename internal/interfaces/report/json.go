package report

import (
	"io"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/courtline/milestones/internal/domain/milestone"
)

// Document is the serialized shape of one classification run.
type Document struct {
	GeneratedAt string                       `json:"generated_at"`
	Games       int                          `json:"games"`
	Total       int                          `json:"total_milestones"`
	Summary     map[string]int               `json:"summary"`
	Milestones  map[string][]milestone.Entry `json:"milestones"`
}

// BuildDocument snapshots a result set into a serializable document.
func BuildDocument(results *milestone.Results, games int, now time.Time) Document {
	return Document{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Games:       games,
		Total:       results.Count(),
		Summary:     results.Summary(),
		Milestones:  results.ToMap(),
	}
}

// WriteJSON serializes the document to w. Pretty output indents with two
// spaces for humans; compact output is for downstream tooling.
func WriteJSON(w io.Writer, doc Document, pretty bool) error {
	var (
		raw []byte
		err error
	)
	if pretty {
		raw, err = sonic.MarshalIndent(doc, "", "  ")
	} else {
		raw, err = sonic.Marshal(doc)
	}
	if err != nil {
		return crerr.Wrap(err, "marshal milestone report")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.Write(raw)
	_ = buf.WriteByte('\n')

	if _, err := w.Write(buf.Bytes()); err != nil {
		return crerr.Wrap(err, "write milestone report")
	}
	return nil
}
