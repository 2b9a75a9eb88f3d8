package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a .aisdlc file in a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".aisdlc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
version = "0.1.0"
steps = ["0.idea", "1.prd", "2.prd-plus"]
active_dir = "doing"
done_dir = "done"
prompt_dir = "prompts"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"0.idea", "1.prd", "2.prd-plus"}, cfg.Steps)
	assert.Equal(t, "doing", cfg.ActiveDir)
	assert.Equal(t, "done", cfg.DoneDir)
	assert.Equal(t, "prompts", cfg.PromptDir)
}

func TestLoad_FileNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".aisdlc")

	_, err := Load(path)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, path, notFound.Path)
	assert.Contains(t, err.Error(), "aisdlc init")
}

func TestLoad_CorruptedTOML(t *testing.T) {
	path := writeConfig(t, `steps = ["0.idea"`)

	_, err := Load(path)

	var corrupted *CorruptedError
	require.ErrorAs(t, err, &corrupted)
	assert.Equal(t, path, corrupted.Path)
}

func TestLoad_ValidationEnumeratesAllProblems(t *testing.T) {
	// Three violations at once: empty steps, missing done_dir, missing
	// prompt_dir. All must be reported in a single error.
	path := writeConfig(t, `
steps = []
active_dir = "doing"
`)

	_, err := Load(path)

	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Len(t, invalid.Problems, 3)
	assert.Contains(t, err.Error(), "steps must not be empty")
	assert.Contains(t, err.Error(), "missing required key: done_dir")
	assert.Contains(t, err.Error(), "missing required key: prompt_dir")
}

func TestLoad_ValidationProblems(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantProblem string
	}{
		{
			name:        "missing steps key",
			content:     "active_dir = \"doing\"\ndone_dir = \"done\"\nprompt_dir = \"prompts\"\n",
			wantProblem: "missing required key: steps",
		},
		{
			name:        "non-string step entry",
			content:     "steps = [\"0.idea\", 7]\nactive_dir = \"doing\"\ndone_dir = \"done\"\nprompt_dir = \"prompts\"\n",
			wantProblem: "steps[1]: expected a string",
		},
		{
			name:        "step without ordinal separator",
			content:     "steps = [\"idea\"]\nactive_dir = \"doing\"\ndone_dir = \"done\"\nprompt_dir = \"prompts\"\n",
			wantProblem: "does not match the <ordinal>.<name> form",
		},
		{
			name:        "duplicate step",
			content:     "steps = [\"0.idea\", \"0.idea\"]\nactive_dir = \"doing\"\ndone_dir = \"done\"\nprompt_dir = \"prompts\"\n",
			wantProblem: "duplicate step",
		},
		{
			name:        "steps not an array",
			content:     "steps = \"0.idea\"\nactive_dir = \"doing\"\ndone_dir = \"done\"\nprompt_dir = \"prompts\"\n",
			wantProblem: "steps: expected an array of strings",
		},
		{
			name:        "empty active_dir",
			content:     "steps = [\"0.idea\"]\nactive_dir = \"\"\ndone_dir = \"done\"\nprompt_dir = \"prompts\"\n",
			wantProblem: "active_dir must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			_, err := Load(path)

			var invalid *ValidationError
			require.ErrorAs(t, err, &invalid)
			assert.Contains(t, err.Error(), tt.wantProblem)
		})
	}
}

func TestLoad_ToleratesUnrecognizedKeys(t *testing.T) {
	path := writeConfig(t, `
version = "0.1.0"
custom_key = "value"
steps = ["0.idea"]
active_dir = "doing"
done_dir = "done"
prompt_dir = "prompts"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"0.idea"}, cfg.Steps)
}

func TestConfig_StepHelpers(t *testing.T) {
	cfg := &Config{Steps: []string{"0.idea", "1.prd", "2.prd-plus"}}

	assert.Equal(t, "0.idea", cfg.FirstStep())
	assert.Equal(t, "2.prd-plus", cfg.LastStep())
	assert.Equal(t, 1, cfg.StepIndex("1.prd"))
	assert.Equal(t, -1, cfg.StepIndex("9.unknown"))
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		step string
		want string
	}{
		{"0.idea", "idea"},
		{"2.prd-plus", "prd-plus"},
		{"10.tests", "tests"},
		{"noseparator", "noseparator"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayName(tt.step))
	}
}
