package ui

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// SetupI18n initializes the translation bundle and detects available languages.
func (app *ClockApp) SetupI18n() {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		detectedLangs = append(detectedLangs, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	app.SupportedLanguages = detectedLangs
	app.I18nBundle = bundle
	app.UpdateLocalizer()
}

// UpdateLocalizer refreshes the translator from the configured language.
func (app *ClockApp) UpdateLocalizer() {
	if app.I18nBundle == nil {
		return
	}
	lang := app.Layout.Language
	if lang == "" {
		lang = config.DefaultLanguage
	}
	app.Localizer = i18n.NewLocalizer(app.I18nBundle, lang)
}

// GetMsg is a helper to translate a key safely. Missing keys come back unchanged.
func (app *ClockApp) GetMsg(key string) string {
	if app.Localizer == nil {
		return key
	}
	msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// DateNames returns weekday and month abbreviations in the active language.
func (app *ClockApp) DateNames() engine.DateNames {
	return localizedNames{app: app}
}

// localizedNames falls back to English for any name the bundle lacks.
type localizedNames struct {
	app *ClockApp
}

func (n localizedNames) Weekday(d time.Weekday) string {
	en := engine.EnglishNames{}.Weekday(d)
	return n.lookup(config.TKeyWeekdayPrefix+strings.ToLower(en), en)
}

func (n localizedNames) Month(m time.Month) string {
	en := engine.EnglishNames{}.Month(m)
	return n.lookup(config.TKeyMonthPrefix+strings.ToLower(en), en)
}

func (n localizedNames) lookup(key, fallback string) string {
	if msg := n.app.GetMsg(key); msg != key && msg != "" {
		return msg
	}
	return fallback
}
