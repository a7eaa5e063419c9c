package loader

import (
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPrefix is the prefix of environment overrides.
const DefaultEnvPrefix = "BARCODE_"

// EnvLoader loads configuration from environment variables.
// Variables named in the mapping go to the mapped key; any other prefixed
// variable FOO_SECTION_SOME_NAME becomes section.someName.
type EnvLoader struct {
	prefix  string
	mapping map[string]string
	types   map[string]any
	environ func() []string
}

// NewEnvLoader creates an environment loader for prefix, which should
// include the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
		environ: os.Environ,
	}
}

func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "LOG_LEVEL":     "logging.level",
		prefix + "LOG_FILE":      "logging.file",
		prefix + "SCROLL_MARGIN": "editor.scrollMargin",
		prefix + "POLL_INTERVAL": "editor.pollInterval",
		prefix + "INIT_SCRIPT":   "plugins.initScript",
	}
}

// AddMapping maps envVar to a dotted configuration key.
func (l *EnvLoader) AddMapping(envVar, key string) {
	l.mapping[envVar] = key
}

// SetTypes sets a template map whose leaf values give the type each key is
// read as, so "1" stays a string for a string setting. Keys missing from
// the template are guessed by parseValue.
func (l *EnvLoader) SetTypes(template map[string]any) {
	l.types = template
}

// Load returns the prefixed variables as a nested map. Empty values count
// as set.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}

		key, mapped := l.mapping[name]
		if !mapped {
			key = l.envToKey(name)
		}
		if key == "" {
			continue
		}
		setByPath(config, key, l.convert(key, value))
	}

	return config, nil
}

// envToKey converts PREFIX_UI_CURSOR_GLYPH to ui.cursorGlyph. Names with
// no setting part are skipped.
func (l *EnvLoader) envToKey(env string) string {
	parts := strings.Split(strings.TrimPrefix(env, l.prefix), "_")
	if len(parts) < 2 || parts[0] == "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(strings.ToLower(parts[0]))
	sb.WriteByte('.')
	for i, p := range parts[1:] {
		if p == "" {
			continue
		}
		if i == 0 {
			sb.WriteString(strings.ToLower(p))
			continue
		}
		sb.WriteString(strings.ToUpper(p[:1]) + strings.ToLower(p[1:]))
	}
	return sb.String()
}

// convert reads s as the type the template holds at key.
func (l *EnvLoader) convert(key, s string) any {
	switch lookupPath(l.types, key).(type) {
	case string:
		return s
	case int64:
		if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return i
		}
	case float64:
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	case bool:
		if b, ok := parseBool(s); ok {
			return b
		}
	}
	return parseValue(s)
}

// parseValue turns an environment string into an int, float, bool or
// string. Numbers win over booleans so that "1" stays a number.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	if b, ok := parseBool(s); ok {
		return b
	}
	return s
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	}
	return false, false
}

// lookupPath returns the value at a dotted key, or nil.
func lookupPath(data map[string]any, key string) any {
	var current any = data
	for _, part := range strings.Split(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[part]
	}
	return current
}

// setByPath sets a value in a nested map using a dotted key.
func setByPath(data map[string]any, key string, value any) {
	parts := strings.Split(key, ".")
	current := data
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
