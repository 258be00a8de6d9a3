package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-widget/internal/controller"
)

func runCard(t *testing.T, args ...string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	// A nil slice would make cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	require.NoError(t, cmd.Execute())
	return out.String(), errOut.String()
}

func TestCardForCity(t *testing.T) {
	out, errOut := runCard(t, "--seed", "1", "--timezone", "UTC", "tando", "adam")
	assert.Contains(t, out, "Tando Adam, ID")
	assert.Contains(t, out, "Clouds • overcast")
	assert.Empty(t, errOut)
}

func TestCardFallbackWarns(t *testing.T) {
	out, errOut := runCard(t, "--seed", "1", "atlantis")
	assert.Contains(t, out, "Karachi, PK")
	assert.Contains(t, errOut, controller.FallbackNotice)
}

func TestCardDefaultsToKarachi(t *testing.T) {
	out, errOut := runCard(t)
	assert.Contains(t, out, "Karachi, PK")
	assert.Empty(t, errOut)
}

func TestCardList(t *testing.T) {
	out, _ := runCard(t, "--list")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 13)
	assert.Equal(t, "karachi", lines[0])
}
