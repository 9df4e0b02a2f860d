package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"autocomplete-srv/internal/autocomplete/parser"
	"autocomplete-srv/internal/autocomplete/usecase"
	"autocomplete-srv/internal/model"
	"autocomplete-srv/pkg/log"
	"autocomplete-srv/pkg/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quietConfig = "logger:\n  level: error\n"

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// execute runs the root command with the given stdin and arguments.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// expected renders raw with a default use case.
func expected(t *testing.T, raw string) string {
	t.Helper()
	l := log.NewNop()
	uc, err := usecase.New(l, parser.New(l), usecase.DefaultConfig())
	require.NoError(t, err)

	var clean model.CleanRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &clean))
	q, err := uc.GenerateQuery(context.Background(), clean)
	require.NoError(t, err)
	b, err := query.Marshal(q)
	require.NoError(t, err)
	return string(b)
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "autocomplete", cmd.Use)

	for _, name := range []string{"render", "batch"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Equal(t, "", configFlag.DefValue)

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "false", verboseFlag.DefValue)
}

func TestRender_Stdin(t *testing.T) {
	cfg := writeFile(t, "config.yaml", quietConfig)
	raw := `{"text":"foo ba","tokens":["foo","ba"],"tokens_complete":["foo"],"tokens_incomplete":["ba"],"layers":["venue"]}`

	out, err := execute(t, raw, "--config", cfg, "render")
	require.NoError(t, err)
	assert.Equal(t, expected(t, raw)+"\n", out)
}

func TestRender_Pretty(t *testing.T) {
	cfg := writeFile(t, "config.yaml", quietConfig)
	raw := `{"text":"foo"}`

	out, err := execute(t, raw, "--config", cfg, "render", "-", "--pretty")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{\n  \"type\": \"autocomplete\","))
	assert.JSONEq(t, expected(t, raw), out)
}

func TestRender_YAMLFileVars(t *testing.T) {
	cfg := writeFile(t, "config.yaml", quietConfig)
	req := writeFile(t, "request.yaml", `
text: paris
focus.point.lat: 48.8
focus.point.lon: 2.3
parsed_text:
  city: paris
`)

	out, err := execute(t, "", "--config", cfg, "render", req, "--vars")
	require.NoError(t, err)

	var vars map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &vars))
	assert.Equal(t, "paris", vars["input:name"])
	assert.Equal(t, "paris", vars["input:locality"])
	assert.Equal(t, "enabled", vars["input:add_name_to_multimatch"])
	assert.Equal(t, 48.8, vars["focus:point:lat"])
}

func TestRender_InputFlag(t *testing.T) {
	cfg := writeFile(t, "config.yaml", quietConfig)

	out, err := execute(t, "text: foo\n", "--config", cfg, "render", "--input", "yaml")
	require.NoError(t, err)
	assert.Equal(t, expected(t, `{"text":"foo"}`)+"\n", out)

	_, err = execute(t, "{}", "--config", cfg, "render", "--input", "xml")
	assert.ErrorContains(t, err, "invalid input format")
}

func TestRender_BadRequest(t *testing.T) {
	cfg := writeFile(t, "config.yaml", quietConfig)

	_, err := execute(t, `{"text":`, "--config", cfg, "render")
	assert.ErrorContains(t, err, "decode json request")

	_, err = execute(t, "", "--config", cfg, "render", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "open input")
}

func TestRender_InvalidLayoutConfig(t *testing.T) {
	cfg := writeFile(t, "config.yaml", quietConfig+"api:\n  custom_boosts:\n    category:\n      food: 2\n")

	_, err := execute(t, `{"text":"foo"}`, "--config", cfg, "render")
	assert.ErrorContains(t, err, "build layout")
}

func TestBatch_OrderedOutput(t *testing.T) {
	cfg := writeFile(t, "config.yaml", quietConfig)
	requests := []string{
		`{"text":"one"}`,
		`{"text":"two","sources":["osm"]}`,
		`{"text":"three","focus.point.lat":1,"focus.point.lon":2}`,
		`{"text":"four","boundary.country":["FRA"]}`,
	}
	input := strings.Join(requests[:2], "\n") + "\n\n" + strings.Join(requests[2:], "\n") + "\n"

	out, err := execute(t, input, "--config", cfg, "batch", "--workers", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(requests))
	for i, raw := range requests {
		assert.Equal(t, expected(t, raw), lines[i])
	}
}

func TestBatch_WorkersFromConfig(t *testing.T) {
	cfg := writeFile(t, "config.yaml", quietConfig+"cli:\n  workers: 1\n")

	out, err := execute(t, "{\"text\":\"a\"}\n{\"text\":\"b\"}\n", "--config", cfg, "batch")
	require.NoError(t, err)
	assert.Equal(t, expected(t, `{"text":"a"}`)+"\n"+expected(t, `{"text":"b"}`)+"\n", out)
}

func TestBatch_Errors(t *testing.T) {
	cfg := writeFile(t, "config.yaml", quietConfig)

	_, err := execute(t, "{\"text\":\"a\"}\n\n{oops}\n", "--config", cfg, "batch")
	assert.ErrorContains(t, err, "line 3")

	_, err = execute(t, "{}\n", "--config", cfg, "batch", "--workers", "0")
	assert.ErrorContains(t, err, "invalid workers")
}

func TestBatch_Empty(t *testing.T) {
	cfg := writeFile(t, "config.yaml", quietConfig)

	out, err := execute(t, "\n\n", "--config", cfg, "batch")
	require.NoError(t, err)
	assert.Empty(t, out)
}
