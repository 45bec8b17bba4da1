package report

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/quaverlabs/brainzgap/pkg/errors"
	"github.com/quaverlabs/brainzgap/pkg/scan"
)

// Markdown renders the scan result as a Markdown worklist, suitable for
// pasting into wiki project pages or issue trackers.
func Markdown(r *scan.Result) ([]byte, error) {
	rows := make([][]string, 0, len(r.Artists))
	for i, a := range r.Artists {
		entity := "אין מזהה"
		switch {
		case a.Entity.Linked():
			entity = md.Link(a.Entity.ID, EntityURL(a.Entity.ID))
		case a.Entity.Failed():
			entity = "שגיאה"
		}

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			a.Title,
			md.Link("לדף ויקיפדיה", ArticleURL(r.Language, a.Title)),
			entity,
			md.Link("חיפוש והוספה", SearchURL(a.Title)),
		})
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s - אמנים ללא MusicBrainz", r.Category))
	doc.PlainTextf("נמצאו %d אמנים ללא מזהה MusicBrainz (%s) בוויקינתונים.", len(r.Artists), r.Property)
	doc.LF()
	doc.Table(md.TableSet{
		Header: []string{"#", "שם האמן", "ויקיפדיה", "ויקינתונים", "הוסף ל-MusicBrainz"},
		Rows:   rows,
	})
	doc.HorizontalRule()
	doc.PlainTextf("נוצר בתאריך %s", r.ExecutedAt.Format(generatedAtLayout))

	if err := doc.Build(); err != nil {
		return nil, errors.WrapParse("markdown", "report", err)
	}
	return buf.Bytes(), nil
}
