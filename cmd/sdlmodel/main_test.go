package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunRejectsUnknownCommand(t *testing.T) {
	err := run([]string{"bogus"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown command")
}

func TestRunRequiresCommand(t *testing.T) {
	err := run([]string{})
	require.Error(t, err)
}

func TestHelpTopics(t *testing.T) {
	for _, topic := range []string{"compile", "check", "render"} {
		require.NoError(t, run([]string{"help", topic}))
	}
	require.Error(t, run([]string{"help", "bogus"}))
}

func TestCompileRequiresSchema(t *testing.T) {
	err := run([]string{"compile"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "-schema is required")
}

func TestCompileWritesModel(t *testing.T) {
	dir := t.TempDir()
	schemaFile := filepath.Join(dir, "schema.graphql")
	require.NoError(t, os.WriteFile(schemaFile, []byte("type Query { ok: Boolean }\n"), 0644))

	outFile := filepath.Join(dir, "model.json")
	require.NoError(t, run([]string{"compile", "-schema", schemaFile, "-out", outFile, "-pretty"}))

	out, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Contains(t, string(out), `"Query"`)
	require.Contains(t, string(out), `"Boolean"`)
}

func TestCheckReportsSyntaxFailure(t *testing.T) {
	dir := t.TempDir()
	schemaFile := filepath.Join(dir, "bad.graphql")
	require.NoError(t, os.WriteFile(schemaFile, []byte("garbage\n"), 0644))

	err := run([]string{"check", "-schema", schemaFile})
	require.Error(t, err)
	require.Contains(t, err.Error(), "garbage")
}

func TestRenderWritesSDL(t *testing.T) {
	dir := t.TempDir()
	schemaFile := filepath.Join(dir, "schema.graphql")
	require.NoError(t, os.WriteFile(schemaFile, []byte("union U = A | B\n"), 0644))

	outFile := filepath.Join(dir, "out.graphql")
	require.NoError(t, run([]string{"render", "-schema", schemaFile, "-out", outFile}))

	out, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Contains(t, string(out), "union U = A | B")
}
