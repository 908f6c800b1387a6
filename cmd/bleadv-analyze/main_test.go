package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d21d3q/gobleadv/internal/config"
	"github.com/d21d3q/gobleadv/pkg/bleadv"
)

func TestRunAnalyzeText(t *testing.T) {
	var out bytes.Buffer
	err := runAnalyze(context.Background(), &out, bleadv.AnalyzeOptions{}, config.FormatText, "020106 0609486F6C6C61")
	require.NoError(t, err)
	require.Equal(t, "Flags: 0x06\nComplete Local Name: Holla\n", out.String())
}

func TestRunAnalyzeJSON(t *testing.T) {
	var out bytes.Buffer
	err := runAnalyze(context.Background(), &out, bleadv.AnalyzeOptions{}, config.FormatJSON, "020106")
	require.NoError(t, err)

	var summary map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &summary))
	require.Equal(t, "020106", summary["raw_hex"])
	require.Len(t, summary["records"], 1)
}

func TestRunAnalyzeInvalidHex(t *testing.T) {
	var out bytes.Buffer
	err := runAnalyze(context.Background(), &out, bleadv.AnalyzeOptions{}, config.FormatText, "0201X6")
	require.Error(t, err)
	require.Empty(t, out.String())
}

func TestRunInteractive(t *testing.T) {
	in := strings.NewReader("020106\n\nnot hex\n020AF4\n")
	var out bytes.Buffer
	require.NoError(t, runInteractive(context.Background(), in, &out, bleadv.AnalyzeOptions{}, config.FormatText))
	require.Contains(t, out.String(), "Flags: 0x06\n")
	require.Contains(t, out.String(), "Tx Power Level: -12 dBm\n")
}
