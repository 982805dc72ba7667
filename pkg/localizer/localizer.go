// Package localizer adapts a go-i18n bundle into a custom message lookup.
//
// A [Localizer] implements messages.Lookuper: keys found in the bundle
// override the default templates, everything else falls through.
//
//	bundle := localizer.NewBundle(language.English)
//	_, err := bundle.LoadMessageFileFS(files, "active.en.toml")
//
//	obj := &messages.Object{Lookup: localizer.New(bundle, "de", "en").MessageForKey}
package localizer

import (
	"errors"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Localizer resolves message keys through a go-i18n localizer.
type Localizer struct {
	localizer *i18n.Localizer
}

// NewBundle creates a go-i18n bundle with TOML and YAML message files
// enabled. JSON is supported by go-i18n out of the box.
func NewBundle(defaultLanguage language.Tag) *i18n.Bundle {
	bundle := i18n.NewBundle(defaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	return bundle
}

// New creates a Localizer over bundle for the given languages, in order of
// preference. The bundle's default language is always the last resort.
func New(bundle *i18n.Bundle, langs ...string) *Localizer {
	return &Localizer{localizer: i18n.NewLocalizer(bundle, langs...)}
}

// MessageForKey implements messages.Lookuper. Keys missing from the bundle
// report false. A message found only in the bundle's default language is
// still returned.
func (l *Localizer) MessageForKey(key string) (string, bool) {
	if key == "" {
		return "", false
	}

	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if msg == "" {
		return "", false
	}

	var notFound *i18n.MessageNotFoundErr
	if err != nil && !errors.As(err, &notFound) {
		return "", false
	}
	return msg, true
}
