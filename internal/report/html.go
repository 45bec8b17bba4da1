// Package report renders scan results into shareable documents: a
// self-contained right-to-left HTML page and a Markdown worklist. The
// page chrome is Hebrew regardless of the scanned language edition;
// article links point at the edition that was scanned.
package report

import (
	"bytes"
	"html/template"

	"github.com/quaverlabs/brainzgap/pkg/errors"
	"github.com/quaverlabs/brainzgap/pkg/scan"
)

// generatedAtLayout formats the report generation timestamp.
const generatedAtLayout = "2006-01-02 15:04:05 UTC"

// htmlData is the root template context.
type htmlData struct {
	Category    string
	Count       int
	Property    string
	GeneratedAt string
	Rows        []htmlRow
}

// htmlRow is one table row. EntityID is empty for unlinked articles and
// for failed lookups; Failed tells the two apart.
type htmlRow struct {
	Index      int
	Name       string
	ArticleURL string
	EntityID   string
	EntityURL  string
	Failed     bool
	SearchURL  string
}

// HTML renders the scan result as a self-contained Hebrew RTL page.
// Rendering the same result twice produces identical bytes.
func HTML(r *scan.Result) ([]byte, error) {
	rows := make([]htmlRow, 0, len(r.Artists))
	for i, a := range r.Artists {
		row := htmlRow{
			Index:      i + 1,
			Name:       a.Title,
			ArticleURL: ArticleURL(r.Language, a.Title),
			Failed:     a.Entity.Failed(),
			SearchURL:  SearchURL(a.Title),
		}
		if a.Entity.Linked() {
			row.EntityID = a.Entity.ID
			row.EntityURL = EntityURL(a.Entity.ID)
		}
		rows = append(rows, row)
	}

	data := htmlData{
		Category:    r.Category,
		Count:       len(r.Artists),
		Property:    r.Property,
		GeneratedAt: r.ExecutedAt.Format(generatedAtLayout),
		Rows:        rows,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, errors.WrapParse("html", "report", err)
	}
	return buf.Bytes(), nil
}

var pageTemplate = template.Must(template.New("report").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="he" dir="rtl">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Category}} - אמנים ללא MusicBrainz</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 20px;
            background-color: #f5f5f5;
        }
        h1 {
            color: #333;
            text-align: center;
            margin-bottom: 10px;
        }
        .subtitle {
            text-align: center;
            color: #666;
            margin-bottom: 30px;
        }
        .artist-table {
            width: 100%;
            border-collapse: collapse;
            background-color: white;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        th, td {
            padding: 12px;
            text-align: right;
            border-bottom: 1px solid #ddd;
        }
        th {
            background-color: #e74c3c;
            color: white;
            font-weight: bold;
        }
        tr:hover {
            background-color: #fff5f5;
        }
        a {
            text-decoration: none;
            color: #0366d6;
        }
        a:hover {
            text-decoration: underline;
        }
        .musicbrainz-link {
            color: #EB743B;
            font-weight: bold;
        }
        .stats {
            text-align: center;
            margin: 20px 0;
            color: #666;
        }
        .wikidata-status {
            font-size: 0.9em;
            color: #888;
        }
        .no-wikidata {
            color: #e74c3c;
        }
    </style>
</head>
<body>
    <h1>{{.Category}}</h1>
    <div class="subtitle">אמנים שאין להם מזהה MusicBrainz בוויקינתונים</div>
    <div class="stats">נמצאו {{.Count}} אמנים ללא מזהה MusicBrainz</div>

    <table class="artist-table">
        <thead>
            <tr>
                <th>#</th>
                <th>שם האמן</th>
                <th>ויקיפדיה</th>
                <th>ויקינתונים</th>
                <th>הוסף ל-MusicBrainz</th>
            </tr>
        </thead>
        <tbody>
{{- range .Rows}}
            <tr>
                <td>{{.Index}}</td>
                <td>{{.Name}}</td>
                <td><a href="{{.ArticleURL}}" target="_blank">לדף ויקיפדיה</a></td>
                <td class="wikidata-status">{{if .EntityID}}<a href="{{.EntityURL}}" target="_blank">{{.EntityID}}</a>{{else if .Failed}}<span class="no-wikidata">שגיאה</span>{{else}}<span class="no-wikidata">אין מזהה</span>{{end}}</td>
                <td><a href="{{.SearchURL}}" target="_blank" class="musicbrainz-link">חיפוש והוספה</a></td>
            </tr>
{{- end}}
        </tbody>
    </table>

    <div style="margin-top: 40px; text-align: center; color: #666;">
        <p>אמנים אלו לא נמצאו עם מזהה MusicBrainz ({{.Property}}) בוויקינתונים.</p>
        <p>ניתן לחפש אותם ב-MusicBrainz ולהוסיף את המזהה לוויקינתונים.</p>
        <p>נוצר בתאריך {{.GeneratedAt}}</p>
    </div>
</body>
</html>
`
