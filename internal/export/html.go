package export

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"
)

// ErrPhotoMissing indicates a referenced photo is absent from the store.
var ErrPhotoMissing = errors.New("photo not found in store")

// documentTemplate is the standalone, printable report document. All
// styling is inline so the file works as a single download.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Inspection Report</title>
<style>
body { font-family: Georgia, serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
h1 { border-bottom: 2px solid #222; padding-bottom: .5rem; }
h3 { margin-top: 1.5rem; }
.badge { display: inline-block; padding: .25rem .75rem; border-radius: .25rem; font-weight: bold; }
.badge.good { background: #d4edda; color: #155724; }
.badge.warn { background: #fff3cd; color: #856404; }
.overall-desc { margin: .5rem 0 1rem; color: #555; }
.photos img { max-width: 14rem; max-height: 14rem; margin: .25rem .5rem .25rem 0; border: 1px solid #ccc; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>Inspection Report</h1>
<p><strong>Date &amp; Time of Inspection:</strong> {{formatTime .View.Timestamp}}</p>
{{if .View.Address}}<p><strong>Property Address:</strong> {{.View.Address}}</p>{{end}}
{{if .View.Tenant}}<p><strong>Occupant / Tenant:</strong> {{.View.Tenant}}</p>{{end}}
{{if .View.Landlord}}<p><strong>Landlord / Agent:</strong> {{.View.Landlord}}</p>{{end}}
{{if eq .View.Verdict "all_good"}}
<div class="badge good">All Good</div>
<div class="overall-desc">No issues were reported during this inspection.</div>
{{else}}
<div class="badge warn">Issues Found</div>
<div class="overall-desc">Some damage was reported. Details are listed by room below.</div>
{{end}}
{{range .View.DamagedRooms}}
<h3>{{.Name}}</h3>
<ul>
{{range .Items}}
<li>
<strong>{{.Label}}:</strong> {{if .Notes}}{{range lines .Notes}}{{.}}<br>{{end}}{{else}}Damage reported{{end}}
{{if .PhotoIDs}}<div class="photos">{{range .PhotoIDs}}<img src="{{photo .}}" alt="Damage photo">{{end}}</div>{{end}}
</li>
{{end}}
</ul>
{{end}}
{{if .View.GeneralNotes}}
<h3>General Notes</h3>
<p>{{range lines .View.GeneralNotes}}{{.}}<br>{{end}}</p>
{{end}}
</body>
</html>
`

// WriteHTML renders the resolved document as a standalone HTML file.
func (d *Document) WriteHTML(w io.Writer) error {
	tmpl := template.New("report").Funcs(template.FuncMap{
		"lines": func(s string) []string {
			return strings.Split(s, "\n")
		},
		"formatTime": func(t time.Time) string {
			if t.IsZero() {
				return "Not recorded"
			}
			return t.Format("2 January 2006 at 15:04")
		},
		"photo": func(id string) template.URL {
			// Resolved data URLs only; Resolve guarantees every id is
			// present before a document exists.
			return template.URL(d.Photos[id])
		},
	})

	tmpl, err := tmpl.Parse(documentTemplate)
	if err != nil {
		return fmt.Errorf("parsing report document template: %w", err)
	}
	if err := tmpl.Execute(w, d); err != nil {
		return fmt.Errorf("rendering report document: %w", err)
	}
	return nil
}
