package detector

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// ErrNotEnglish is returned by Check in strict mode. The stemmer and the
// stopword list only make sense for English text.
var ErrNotEnglish = errors.New("input is not English")

// DefaultLanguages are the candidates the detector chooses between. A small
// set keeps model loading cheap and is enough to tell English apart.
var DefaultLanguages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
}

// minEnglishConfidence is the confidence below which English is not assumed.
const minEnglishConfidence = 0.5

// Result describes the detected language of a text.
type Result struct {
	Language   string  `yaml:"language"`
	ISOCode    string  `yaml:"iso_code,omitempty"`
	Confidence float64 `yaml:"confidence"`
	Reliable   bool    `yaml:"reliable"`
}

// English reports whether the result identifies English text.
func (r Result) English() bool {
	return r.Reliable && r.Language == lingua.English.String() && r.Confidence >= minEnglishConfidence
}

type Detector struct {
	lingua lingua.LanguageDetector
}

// New builds a detector over langs, or DefaultLanguages when none are given.
func New(langs ...lingua.Language) *Detector {
	if len(langs) < 2 {
		langs = DefaultLanguages
	}
	return &Detector{
		lingua: lingua.NewLanguageDetectorBuilder().
			FromLanguages(langs...).
			Build(),
	}
}

// Detect identifies the language of text. Blank text is Unknown and unreliable.
func (d *Detector) Detect(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Language: lingua.Unknown.String()}
	}

	lang, ok := d.lingua.DetectLanguageOf(text)
	if !ok {
		return Result{Language: lingua.Unknown.String()}
	}
	return Result{
		Language:   lang.String(),
		ISOCode:    strings.ToLower(lang.IsoCode639_1().String()),
		Confidence: d.lingua.ComputeLanguageConfidence(text, lang),
		Reliable:   true,
	}
}

// Check detects the language of text and logs a warning when it is not
// English. With strict set the warning becomes ErrNotEnglish.
func (d *Detector) Check(text string, strict bool, logger *slog.Logger) (Result, error) {
	r := d.Detect(text)
	if r.English() {
		return r, nil
	}
	if strict {
		return r, fmt.Errorf("%w: detected %s (confidence %.2f)", ErrNotEnglish, r.Language, r.Confidence)
	}
	if logger != nil {
		logger.Warn("input does not look like English, stems may be poor",
			"language", r.Language,
			"confidence", r.Confidence)
	}
	return r, nil
}
