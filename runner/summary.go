package runner

import (
	"io"
	"text/template"

	"github.com/jeffrom/gitact/model"
)

const defaultSummaryTemplate = `{{ .Scanned }} project(s) scanned, {{ .Skipped }} skipped.
Total commits processed: {{ len .Records }}
{{- if .Output }}
Output file: {{ .Output }}
{{- end }}
`

type summaryData struct {
	Records []model.Record
	Scanned int
	Skipped int
	Output  string
}

// Summary renders the end-of-run report line(s).
func (r *Runner) Summary(w io.Writer, records []model.Record, output string) error {
	tmpl := defaultSummaryTemplate
	if r.cfg.SummaryTemplate != "" {
		tmpl = r.cfg.SummaryTemplate
	}
	t, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return err
	}
	return t.Execute(w, summaryData{
		Records: records,
		Scanned: r.scanned,
		Skipped: r.skipped,
		Output:  output,
	})
}
