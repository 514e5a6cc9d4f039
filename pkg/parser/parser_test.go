package parser

import (
	"reflect"
	"strings"
	"testing"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Ventricular fibrillation in the field</title></head>
<body>
<nav><a href="/">Home</a> <a href="/about">About</a></nav>
<article>
<h1>Ventricular fibrillation in the field</h1>
<p>Some patients converted from ventricular fibrillation to organized rhythms by
defibrillation-trained ambulance technicians had recurrent fibrillation before
arrival at the hospital, and the technicians were trained to manage it.</p>
<p>The authors analyzed the records of every patient who was refibrillated in the
field during the study period and compared them with patients who were not, looking
for differences in survival and in neurological outcome after discharge.</p>
<p>Refibrillation was common, but it did not reduce survival to discharge when the
technicians were able to shock the patient again promptly with the same device.</p>
</article>
<footer>Copyright notice</footer>
</body>
</html>`

func TestParse_ExtractsArticleParagraphs(t *testing.T) {
	var p Parser
	a, err := p.Parse("https://example.org/emt", articleHTML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	text := a.Text()
	for _, want := range []string{
		"Some patients converted from ventricular fibrillation",
		"Refibrillation was common",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Text() = %q, missing %q", text, want)
		}
	}
	if strings.Contains(text, "Copyright notice") {
		t.Errorf("Text() kept footer: %q", text)
	}
	if strings.Contains(text, "\n") {
		t.Errorf("Text() kept newlines: %q", text)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	var p Parser
	a, err := p.Parse("", "   ")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(a.Blocks) != 0 || a.Text() != "" {
		t.Errorf("Parse(empty) = %+v, want no blocks", a)
	}
}

func TestParse_InvalidURL(t *testing.T) {
	var p Parser
	if _, err := p.Parse("http://[::1", articleHTML); err == nil {
		t.Error("Parse() with invalid url returned nil error")
	}
}

func TestFallback(t *testing.T) {
	html := `<html><head><title> Notes </title><script>var x = 1;</script></head>
<body>
<h2>Findings</h2>
<ul><li><p>First finding</p></li><li>Second finding!</li></ul>
<footer>ignored</footer>
</body></html>`

	a, err := fallback("", html)
	if err != nil {
		t.Fatalf("fallback() error = %v", err)
	}
	if a.Title != "Notes" {
		t.Errorf("Title = %q, want Notes", a.Title)
	}
	want := []string{"Findings", "First finding", "Second finding!"}
	if !reflect.DeepEqual(a.Blocks, want) {
		t.Errorf("Blocks = %v, want %v", a.Blocks, want)
	}
	if got := a.Text(); got != "Findings. First finding. Second finding!" {
		t.Errorf("Text() = %q", got)
	}
	if a.Readability {
		t.Error("Readability = true for fallback")
	}
}

func TestFallback_BodyWithoutBlocks(t *testing.T) {
	a, err := fallback("", "<html><body>just   some\n text</body></html>")
	if err != nil {
		t.Fatalf("fallback() error = %v", err)
	}
	if !reflect.DeepEqual(a.Blocks, []string{"just some text"}) {
		t.Errorf("Blocks = %v", a.Blocks)
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"spaces", "   ", ""},
		{"newlines", "a\n\n  b  \n c", "a b c"},
		{"inner runs", "a \t  b", "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeText(tt.input); got != tt.want {
				t.Errorf("normalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTerminate(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"Heading":    "Heading.",
		"Done.":      "Done.",
		"Really?":    "Really?",
		"Listing:":   "Listing:",
		"Stop here!": "Stop here!",
	}
	for in, want := range tests {
		if got := terminate(in); got != want {
			t.Errorf("terminate(%q) = %q, want %q", in, got, want)
		}
	}
}
