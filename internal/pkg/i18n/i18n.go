package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

type Translations map[string]string

var (
	locales = make(map[string]Translations)
	mu      sync.RWMutex
)

// LoadTranslations reads statuses.yaml from every locale directory under
// localePath. Missing files are skipped so a partially translated deploy
// still boots.
func LoadTranslations(localePath string) error {
	mu.Lock()
	defer mu.Unlock()

	entries, err := os.ReadDir(localePath)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		locale := entry.Name()
		filePath := filepath.Join(localePath, locale, "statuses.yaml")

		data, err := os.ReadFile(filePath)
		if err != nil {
			continue
		}

		var config struct {
			Statuses Translations `yaml:"STATUSES"`
		}

		if err := yaml.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filePath, err)
		}

		locales[locale] = config.Statuses
	}

	return nil
}

// Translate returns the localized label for key, falling back to the key
// itself when the locale or the key is unknown.
func Translate(locale, key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if trans, ok := locales[locale]; ok {
		if val, ok := trans[key]; ok {
			return val
		}
	}
	return key
}
