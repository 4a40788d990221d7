package config

import (
	"database/sql"
	"log"
	"sync"
)

// The display language used to be ambient client-side state; here it is an
// explicit process-wide setting persisted in app_settings. It survives
// restarts and needs no teardown.

const (
	LanguageSwedish = "sv"
	LanguageEnglish = "en"

	defaultLanguage = LanguageSwedish
	languageKey     = "language"
)

var (
	languageMu sync.RWMutex
	language   = defaultLanguage
)

// NormalizeLanguage maps any input to a supported language code, falling back
// to the default for anything unknown.
func NormalizeLanguage(lang string) string {
	switch lang {
	case LanguageSwedish, LanguageEnglish:
		return lang
	}
	return defaultLanguage
}

// LoadLanguage initializes the display language from the persisted setting,
// keeping the default when none has been saved yet.
func LoadLanguage(db *sql.DB) {
	var stored string
	err := db.QueryRow(`SELECT value FROM app_settings WHERE key = $1`, languageKey).Scan(&stored)
	if err == sql.ErrNoRows {
		return
	}
	if err != nil {
		log.Printf("Failed to load language setting, keeping %q: %v", defaultLanguage, err)
		return
	}

	languageMu.Lock()
	language = NormalizeLanguage(stored)
	languageMu.Unlock()
}

// SetLanguage persists the preference and applies it to the running process.
func SetLanguage(db *sql.DB, lang string) error {
	lang = NormalizeLanguage(lang)

	_, err := db.Exec(`INSERT INTO app_settings (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		languageKey, lang)
	if err != nil {
		return err
	}

	languageMu.Lock()
	language = lang
	languageMu.Unlock()
	return nil
}

// Language returns the current display language.
func Language() string {
	languageMu.RLock()
	defer languageMu.RUnlock()
	return language
}
