package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"manifest.md":    {Data: []byte("# Manifest\n\nThe [[link]] table")},
		"option-mode.md": {Data: []byte("Modes: dry, strict, lazy, force")},
		"notes.txt":      {Data: []byte("plain notes")},
		"ignored.json":   {Data: []byte("{}")},
		"nested/deep.md": {Data: []byte("deep topic")},
	}
}

func TestScanTopics(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	assert.Equal(t, []string{"deep", "manifest", "notes", "option-mode"}, tm.ListTopics())

	topic, ok := tm.GetTopic("manifest")
	require.True(t, ok)
	assert.Equal(t, "manifest.md", topic.FilePath)
	assert.Contains(t, topic.Content, "[[link]]")

	_, ok = tm.GetTopic("ignored")
	assert.False(t, ok)
}

func TestScanTopicsCustomExtensions(t *testing.T) {
	tm := NewWithOptions(testFS(), Options{Extensions: []string{".json"}})
	require.NoError(t, tm.scanTopics())
	assert.Equal(t, []string{"ignored"}, tm.ListTopics())
}

func TestGetTopicFlagStyle(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"--mode", "-mode", "mode", "option-mode"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-mode", topic.Name)
	}
}

func TestNilFS(t *testing.T) {
	tm := New(nil)
	require.NoError(t, tm.scanTopics())
	assert.Empty(t, tm.ListTopics())
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "linkdot", Short: "root", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "version", Short: "Print the version", Run: func(*cobra.Command, []string) {}})

	_, err := Initialize(root, testFS())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	return root, out
}

func TestHelpCommandShowsTopic(t *testing.T) {
	root, out := newRoot(t)
	root.SetArgs([]string{"help", "notes"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "plain notes", out.String())
}

func TestHelpCommandListsTopics(t *testing.T) {
	root, out := newRoot(t)
	root.SetArgs([]string{"help", "topics"})

	require.NoError(t, root.Execute())
	listed := out.String()
	assert.Contains(t, listed, "General topics:")
	assert.Contains(t, listed, "  manifest\n")
	assert.Contains(t, listed, "Option topics:")
	assert.Contains(t, listed, "  --mode\n")
	assert.True(t, strings.HasSuffix(listed, "Use 'linkdot help <topic>' to read about a specific topic.\n"))
}

func TestHelpCommandFallsBackToCommandHelp(t *testing.T) {
	root, out := newRoot(t)
	root.SetArgs([]string{"help", "version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Print the version")
}

func TestRawRenderer(t *testing.T) {
	assert.Equal(t, "# x", Raw.Render("# x", ".md"))

	upper := RenderFunc(func(content, ext string) string { return strings.ToUpper(content) + ext })
	assert.Equal(t, "# X.md", upper.Render("# x", ".md"))
}

func TestGlamourRendererLeavesNonMarkdown(t *testing.T) {
	assert.Equal(t, "plain", NewGlamourRenderer().Render("plain", ".txt"))
}

func TestGlamourRendererRendersMarkdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}
	out := r.Render("# Title\n\nbody text", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body text")
}
