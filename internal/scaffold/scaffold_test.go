package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aisdlc/internal/config"
	"aisdlc/internal/workstream"
)

func TestApply_FreshDirectory(t *testing.T) {
	root := t.TempDir()

	report, err := Apply(root)
	require.NoError(t, err)

	assert.True(t, report.ConfigCreated)
	assert.Equal(t, []string{"prompts", "doing", "done"}, report.Dirs)
	assert.Empty(t, report.PromptsSkipped)
	assert.Len(t, report.PromptsCreated, 7)

	assert.DirExists(t, filepath.Join(root, "doing"))
	assert.DirExists(t, filepath.Join(root, "done"))
	assert.DirExists(t, filepath.Join(root, "prompts"))
	assert.FileExists(t, filepath.Join(root, ".aisdlc"))

	lockData, err := os.ReadFile(filepath.Join(root, ".aisdlc.lock"))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(lockData))
}

func TestApply_ScaffoldedConfigIsValid(t *testing.T) {
	root := t.TempDir()

	_, err := Apply(root)
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(root, ".aisdlc"))
	require.NoError(t, err)

	assert.Len(t, cfg.Steps, 8)
	assert.Equal(t, "0.idea", cfg.FirstStep())
	assert.Equal(t, "7.tests", cfg.LastStep())
	assert.Equal(t, DefaultActiveDir, cfg.ActiveDir)
	assert.Equal(t, DefaultDoneDir, cfg.DoneDir)
	assert.Equal(t, DefaultPromptDir, cfg.PromptDir)
}

func TestApply_TemplatesCoverEveryStepAfterTheFirst(t *testing.T) {
	root := t.TempDir()

	_, err := Apply(root)
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(root, ".aisdlc"))
	require.NoError(t, err)

	for _, step := range cfg.Steps[1:] {
		path := filepath.Join(root, cfg.PromptDir, step+".instructions.md")
		content, err := os.ReadFile(path)
		require.NoError(t, err, "template for %s", step)
		assert.Contains(t, string(content), workstream.PrevStepPlaceholder,
			"template for %s must carry the placeholder", step)
	}
}

func TestApply_PreservesExistingConfigAndPrompts(t *testing.T) {
	root := t.TempDir()

	_, err := Apply(root)
	require.NoError(t, err)

	customConfig := "steps = [\"0.custom\"]\nactive_dir = \"doing\"\ndone_dir = \"done\"\nprompt_dir = \"prompts\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ".aisdlc"), []byte(customConfig), 0644))
	customPrompt := filepath.Join(root, "prompts", "1.prd.instructions.md")
	require.NoError(t, os.WriteFile(customPrompt, []byte("my edited template"), 0644))

	report, err := Apply(root)
	require.NoError(t, err)

	assert.False(t, report.ConfigCreated)
	assert.Contains(t, report.PromptsSkipped, "1.prd.instructions.md")

	gotConfig, err := os.ReadFile(filepath.Join(root, ".aisdlc"))
	require.NoError(t, err)
	assert.Equal(t, customConfig, string(gotConfig))

	gotPrompt, err := os.ReadFile(customPrompt)
	require.NoError(t, err)
	assert.Equal(t, "my edited template", string(gotPrompt))
}
