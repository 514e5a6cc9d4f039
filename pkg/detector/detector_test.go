package detector

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/pemistahl/lingua-go"
)

const (
	englishText = "Some patients converted from ventricular fibrillation to organized rhythms were refibrillated before they reached the hospital."
	frenchText  = "Les patients qui ont été réanimés par les techniciens ambulanciers ont souvent présenté une nouvelle fibrillation avant leur arrivée à l'hôpital."
)

// One detector for the whole package; building it loads language models.
var testDetector = New()

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		language string
		english  bool
	}{
		{"english", englishText, "English", true},
		{"french", frenchText, "French", false},
		{"blank", "  \n ", "Unknown", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testDetector.Detect(tt.text)
			if r.Language != tt.language {
				t.Errorf("Detect().Language = %q, want %q", r.Language, tt.language)
			}
			if r.English() != tt.english {
				t.Errorf("Detect().English() = %v, want %v (result %+v)", r.English(), tt.english, r)
			}
		})
	}
}

func TestDetect_ISOCode(t *testing.T) {
	r := testDetector.Detect(englishText)
	if r.ISOCode != "en" {
		t.Errorf("ISOCode = %q, want en", r.ISOCode)
	}
	if r.Confidence <= 0 || r.Confidence > 1 {
		t.Errorf("Confidence = %v, want (0, 1]", r.Confidence)
	}
}

func TestCheck(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	if _, err := testDetector.Check(englishText, true, logger); err != nil {
		t.Errorf("Check(english, strict) error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Check(english) logged %q", buf.String())
	}

	if _, err := testDetector.Check(frenchText, false, logger); err != nil {
		t.Errorf("Check(french, lenient) error = %v", err)
	}
	if !strings.Contains(buf.String(), `"language":"French"`) {
		t.Errorf("Check(french, lenient) log = %q, want warning naming French", buf.String())
	}

	_, err := testDetector.Check(frenchText, true, nil)
	if !errors.Is(err, ErrNotEnglish) {
		t.Errorf("Check(french, strict) error = %v, want ErrNotEnglish", err)
	}
}

func TestNew_SingleLanguageFallsBack(t *testing.T) {
	d := New(lingua.English)
	if r := d.Detect(frenchText); r.Language != "French" {
		t.Errorf("Detect() = %+v, want French from the default candidates", r)
	}
}
