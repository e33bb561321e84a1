// Package i18n loads the panel's user-facing message catalog. Messages that
// reach end users (display errors, validation messages) are looked up here so
// they can be localized without touching service code.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Message IDs.
const (
	DaemonConnectionFailed = "daemon_connection_failed"
	SubuserNotFound        = "subuser_not_found"
	InvalidPermission      = "invalid_permission"
)

// Translator renders message IDs in one language, falling back to English.
type Translator struct {
	localizer *i18n.Localizer
}

// New parses the embedded locale files and returns a Translator for lang.
func New(lang string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", f.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", f.Name(), err)
		}
	}

	return &Translator{localizer: i18n.NewLocalizer(bundle, lang, language.English.String())}, nil
}

// MustNew is New for process start-up, where the embedded catalog cannot be missing.
func MustNew(lang string) *Translator {
	t, err := New(lang)
	if err != nil {
		panic(err)
	}
	return t
}

// T renders messageID with data. Unknown IDs render as the ID itself.
func (t *Translator) T(messageID string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}
