package loader

import (
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPrefix is the prefix of the environment variables read by
// NewEnvLoader.
const DefaultEnvPrefix = "TAGEDIT_"

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "TAGEDIT_")
	mapping map[string]string // Env var -> config path
	skip    map[string]bool   // Prefixed vars that are not settings
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "TAGEDIT_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
		skip:    map[string]bool{prefix + "CONFIG": true},
	}
}

// defaultEnvMapping returns the short aliases for common settings.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "TAB_SIZE":   "editor.tabSize",
		prefix + "PAGE_LINES": "editor.pageLines",
		prefix + "LOG_LEVEL":  "log.level",
		prefix + "LOG_FILE":   "log.file",
	}
}

// Load reads environment variables and returns a configuration map.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range os.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) || l.skip[name] {
			continue
		}

		path, mapped := l.mapping[name]
		if !mapped {
			// TAGEDIT_EDITOR_SELECT_STYLE becomes editor.selectStyle
			path = l.envToPath(name)
		}
		setByPath(config, path, parseValue(value))
	}

	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.mapping[envVar] = configPath
}

// envToPath converts TAGEDIT_EDITOR_TAB_SIZE to editor.tabSize.
func (l *EnvLoader) envToPath(env string) string {
	parts := strings.Split(strings.TrimPrefix(env, l.prefix), "_")

	section := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return section
	}

	setting := strings.ToLower(parts[1])
	for _, part := range parts[2:] {
		if part != "" {
			setting += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}
	return section + "." + setting
}

// parseValue attempts to parse the string value into an appropriate type.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	// Navigate/create intermediate maps
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}
