package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// parseManual tests
// ---------------------------------------------------------------------------

func TestParseManual(t *testing.T) {
	han, fu, err := parseManual("4 30")
	require.NoError(t, err)
	assert.Equal(t, 4, han)
	assert.Equal(t, 30, fu)
}

func TestParseManual_Errors(t *testing.T) {
	for _, in := range []string{"", "4", "4 30 2", "four 30", "4 thirty"} {
		_, _, err := parseManual(in)
		assert.Error(t, err, in)
	}
}

// ---------------------------------------------------------------------------
// run tests
// ---------------------------------------------------------------------------

func runCapture(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("MAHC_LOG_LEVEL", "error")
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Manual(t *testing.T) {
	code, out, _ := runCapture(t, "-manual", "4 30", "-ba", "3")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Dealer: 12500 (4200)\nnon-dealer: 8600 (2300/4200)\n", out)
}

func TestRun_ManualKazoe(t *testing.T) {
	code, out, _ := runCapture(t, "-manual", "13 70", "-ba", "3")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Dealer: 48900 (16300)\nnon-dealer: 32900 (8300/16300)\n", out)
}

func TestRun_ManualNoHan(t *testing.T) {
	code, out, errOut := runCapture(t, "-manual", "0 30")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error: no han provided")
}

func TestRun_ManualFuOutOfRange(t *testing.T) {
	code, out, errOut := runCapture(t, "-manual", "2 1152921504606846976")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error: fu out of range")
}

func TestRun_Hand(t *testing.T) {
	code, out, _ := runCapture(t,
		"-tiles", "123m 456m 789p 345s 22p",
		"-win", "3s",
		"-riichi",
		"-dora", "1",
		"-seat", "s",
	)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Riichi: 1")
	assert.Contains(t, out, "Pinfu: 1")
	assert.Contains(t, out, "Han: 3 Fu: 30")
	assert.Contains(t, out, "Dealer: 5800 (2000)\nnon-dealer: 3900 (1000/2000)")
}

func TestRun_HandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no tiles", []string{"-win", "3s"}, "Error: no hand tiles given"},
		{"invalid group", []string{"-tiles", "135m 456m 789p 345s 22p", "-win", "3s"}, "Error: invalid group found"},
		{"no yaku", []string{"-tiles", "123mo 456p 789s 234m 55s", "-win", "5s", "-dora", "2"}, "Error: no yaku"},
		{"double riichi", []string{"-tiles", "123m 456m 789p 345s 22p", "-win", "3s", "-riichi", "-double-riichi"}, "Error: cannot riichi and double riichi simultaneously"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCapture(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, tt.want)
		})
	}
}

func TestRun_BadLogLevel(t *testing.T) {
	code, _, errOut := runCapture(t, "-manual", "1 30", "-log-level", "loud")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown log level")
}

func TestRun_Batch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hands.yaml")
	doc := "hands:\n" +
		"  - name: mangan\n" +
		"    manual: [4, 30]\n" +
		"    honba: 3\n" +
		"  - name: broken\n" +
		"    tiles: [135m]\n" +
		"    win: 1m\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	code, out, _ := runCapture(t, "-batch", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "== mangan ==\nDealer: 12500 (4200)")
	assert.Contains(t, out, "== broken ==\nError: hand \"broken\": invalid group found")
}

func TestRun_BatchMissingFile(t *testing.T) {
	code, _, errOut := runCapture(t, "-batch", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Error: load batch")
}
