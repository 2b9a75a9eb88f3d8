package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// NotFoundError indicates no .aisdlc config file exists at the project root.
type NotFoundError struct {
	// Path is the location that was checked.
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("config file %s not found; ensure you are in an ai-sdlc project directory, or run `aisdlc init` to initialize one", e.Path)
}

// CorruptedError indicates the config file exists but is not valid TOML.
type CorruptedError struct {
	Path string
	Err  error
}

func (e *CorruptedError) Error() string {
	return fmt.Sprintf("config file %s is corrupted: %v; fix the file or run `aisdlc init` in a new directory", e.Path, e.Err)
}

func (e *CorruptedError) Unwrap() error { return e.Err }

// ValidationError reports every shape violation found in a parsed config.
//
// Validation does not stop at the first problem: all violations are
// collected so the user can fix the file in one pass.
type ValidationError struct {
	Path     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config file %s is invalid:\n  - %s", e.Path, strings.Join(e.Problems, "\n  - "))
}

// requiredDirKeys are the directory-layout keys every config must declare.
var requiredDirKeys = []string{"active_dir", "done_dir", "prompt_dir"}

// Load reads and validates the .aisdlc config file at the given path.
//
// It returns [NotFoundError] when the file does not exist, [CorruptedError]
// when it cannot be parsed as TOML, and [ValidationError] when required
// keys are missing, mistyped, or the step list is malformed. Unrecognized
// keys are tolerated.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &NotFoundError{Path: path}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, &CorruptedError{Path: path, Err: err}
	}

	if problems := validate(v); len(problems) > 0 {
		return nil, &ValidationError{Path: path, Problems: problems}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &CorruptedError{Path: path, Err: err}
	}
	return &cfg, nil
}

// validate collects every shape violation in the parsed config. It works
// on the raw Viper values rather than the decoded struct so that type
// mismatches can be reported precisely instead of being coerced.
func validate(v *viper.Viper) []string {
	var problems []string

	switch raw := v.Get("steps"); steps := raw.(type) {
	case nil:
		problems = append(problems, "missing required key: steps")
	case []any:
		if len(steps) == 0 {
			problems = append(problems, "steps must not be empty")
		}
		seen := make(map[string]bool, len(steps))
		for i, entry := range steps {
			s, ok := entry.(string)
			if !ok {
				problems = append(problems, fmt.Sprintf("steps[%d]: expected a string, got %T", i, entry))
				continue
			}
			ordinal, name, found := strings.Cut(s, ".")
			if !found || ordinal == "" || name == "" {
				problems = append(problems, fmt.Sprintf("steps[%d]: %q does not match the <ordinal>.<name> form", i, s))
			}
			if seen[s] {
				problems = append(problems, fmt.Sprintf("steps[%d]: duplicate step %q", i, s))
			}
			seen[s] = true
		}
	default:
		problems = append(problems, fmt.Sprintf("steps: expected an array of strings, got %T", raw))
	}

	for _, key := range requiredDirKeys {
		switch raw := v.Get(key); dir := raw.(type) {
		case nil:
			problems = append(problems, "missing required key: "+key)
		case string:
			if dir == "" {
				problems = append(problems, key+" must not be empty")
			}
		default:
			problems = append(problems, fmt.Sprintf("%s: expected a string, got %T", key, raw))
		}
	}

	return problems
}
