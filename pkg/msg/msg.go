package msg

import (
	"embed"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var translations embed.FS

const (
	LanguageTr = "tr"
	LanguageEn = "en"
)

var bundle *i18n.Bundle

func init() {
	bundle = i18n.NewBundle(language.Turkish)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := translations.ReadDir("translation")
	if err != nil {
		zap.L().Error("failed to list embedded translations", zap.Error(err))
		return
	}
	for _, f := range entries {
		if f.IsDir() {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(translations, "translation/"+f.Name()); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// Localizer resolves message keys to user-visible text for one language,
// falling back to Turkish (the source locale) for missing entries.
type Localizer struct {
	loc *i18n.Localizer
}

// NewLocalizer builds a Localizer for the given language tag.
func NewLocalizer(lang string) *Localizer {
	return &Localizer{loc: i18n.NewLocalizer(bundle, lang, LanguageTr)}
}

// T returns the localized message for key. Unknown keys come back verbatim so
// a missing translation never hides an error from the user.
func (l *Localizer) T(key string) string {
	m, err := l.loc.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("message_id", key), zap.Error(err))
		return key
	}
	return m
}

// TD is like T but substitutes template data.
func (l *Localizer) TD(key string, data map[string]interface{}) string {
	m, err := l.loc.Localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("message_id", key), zap.Error(err))
		return key
	}
	return m
}
