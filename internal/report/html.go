package report

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/okotila/liftsight/internal/analysis"
)

var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// HTML renders the report as a standalone HTML document by converting the
// Markdown rendering.
func HTML(r analysis.Report) (string, error) {
	var body bytes.Buffer
	if err := markdownRenderer.Convert([]byte(Markdown(r)), &body); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	var doc bytes.Buffer
	doc.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Training report</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
</style>
</head>
<body>
`)
	doc.Write(body.Bytes())
	doc.WriteString("</body>\n</html>\n")
	return doc.String(), nil
}
