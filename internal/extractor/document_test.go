package extractor

import (
	"strings"
	"testing"
)

func TestDocumentLabels(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(`<table>
<tr><td>Emelet</td><td>2</td></tr>
<tr><th>Lift</th>
<td>nincs</td></tr>
<tr><td>Emelet</td><td>földszint</td></tr>
<tr><td>Magányos cella</td></tr>
</table>`))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	labels := doc.Labels()
	if labels["Emelet"] != "földszint" {
		t.Errorf("later row should win: got %q", labels["Emelet"])
	}
	if labels["Lift"] != "nincs" {
		t.Errorf("Lift: got %q", labels["Lift"])
	}
	if _, ok := labels["Magányos cella"]; ok {
		t.Error("a cell without a value sibling became a label")
	}
}

func TestDocumentLabelNormalisation(t *testing.T) {
	// "Fűtés" written with a combining double acute accent.
	decomposed := "Fu\u030bt\u00e9s"
	doc, err := ParseDocument(strings.NewReader("<table><tr><td>" + decomposed + "</td><td>gáz</td></tr></table>"))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if v, ok := doc.Label("Fűtés"); !ok || v != "gáz" {
		t.Errorf("Label(Fűtés) = %q, %v", v, ok)
	}
}

func TestDocumentFirstTextContaining(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(`<body><!-- 5 szoba --><p>Ár</p><p>3 szoba</p><p>4 szoba</p></body>`))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if v, ok := doc.FirstTextContaining("szoba"); !ok || v != "3 szoba" {
		t.Errorf("FirstTextContaining = %q, %v", v, ok)
	}
	if _, ok := doc.FirstTextContaining("Ft"); ok {
		t.Error("found a marker that is not in the document")
	}
}
