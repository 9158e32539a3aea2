package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inputFixture = map[string]string{
	"geographies.csv": "id,name,grid,region,market_grouping\nUY,Uruguay,on,lac,developing market\n",
	"regions.csv":     "id,name\nlac,Latin America and the Caribbean\n",
	"topics.csv":      "id,name,weight\nfundamentals,Fundamentals,1\n",
	"charts.csv": "id,indicatorId,name,type,description,topic,labelX,labelY,unit,applicable-grid\n" +
		"policy,clean-energy-policy,Clean energy policy,answer,Policy,fundamentals,,,,both\n",
	"answers.csv":       "id,indicator,label\nyes,clean-energy-policy,Yes\n",
	"scores.csv":        "geography,category,rank,score\nUruguay,overall,1,2.5\n",
	"subindicators.csv": "id,topic,category,indicator,subindicator,units,geography,note,2018\nclean-energy-policy,fundamentals,policy,Policy,clean-energy-policy,,Uruguay,,yes\n",
	"investment.csv":    "year,sector,geography,value\n2018,Wind,Uruguay,1.5\n",
	"lib/ne-110m_bbox.geojson": `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"ISO_A2":"UY"},` +
		`"geometry":{"type":"Point","coordinates":[-56.0,-32.5]}}]}`,
}

// setupWorkdir moves into a temp dir holding an input tree and returns its
// input and output paths.
func setupWorkdir(t *testing.T, files map[string]string) (string, string) {
	t.Helper()
	root := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { os.Chdir(origDir) }) //nolint:errcheck

	in := filepath.Join(root, "input")
	for name, content := range files {
		path := filepath.Join(in, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return in, filepath.Join(root, "output")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"build", "validate"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "climatescope-data", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestBuildCommand_Flags(t *testing.T) {
	for _, name := range []string{"input", "output", "bbox", "year", "target-year", "concurrency"} {
		flag := buildCmd.Flags().Lookup(name)
		require.NotNil(t, flag, "build should have --%s flag", name)
	}
	assert.Equal(t, "0", buildCmd.Flags().Lookup("target-year").DefValue)
}

func TestValidateCommand_Flags(t *testing.T) {
	for _, name := range []string{"input", "bbox", "year"} {
		assert.NotNil(t, validateCmd.Flags().Lookup(name), "validate should have --%s flag", name)
	}
	assert.Nil(t, validateCmd.Flags().Lookup("output"))
}

func TestBuildCommand_Run(t *testing.T) {
	in, out := setupWorkdir(t, inputFixture)

	stdout, err := execute(t, "build", "--input", in, "--output", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote 1 geographies and 1 charts")

	assert.FileExists(t, filepath.Join(out, "results.json"))
	assert.FileExists(t, filepath.Join(out, "results", "uy.json"))
}

func TestBuildCommand_InvalidConfig(t *testing.T) {
	in, _ := setupWorkdir(t, inputFixture)

	_, err := execute(t, "build", "--input", in, "--output", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "paths.output must differ")
}

func TestValidateCommand_Run(t *testing.T) {
	in, _ := setupWorkdir(t, inputFixture)

	stdout, err := execute(t, "validate", "--input", in)
	require.NoError(t, err)
	assert.Contains(t, stdout, "all checks passed")
}

func TestValidateCommand_Violations(t *testing.T) {
	files := make(map[string]string, len(inputFixture))
	for k, v := range inputFixture {
		files[k] = v
	}
	files["topics.csv"] = "id,name,weight\nfundamentals,Fundamentals,0.5\n"
	in, _ := setupWorkdir(t, files)

	stdout, err := execute(t, "validate", "--input", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 violation(s)")
	assert.Contains(t, stdout, "topics.csv [weights]")
}
