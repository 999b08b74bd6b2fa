package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/dayplan/internal/core/doctor"
	"github.com/colonyops/dayplan/pkg/tuitest"
)

func sampleResults() []doctor.Result {
	return []doctor.Result{
		{Name: "Configuration", Items: []doctor.CheckItem{{Label: "values", Status: doctor.StatusPass, Detail: "valid"}}},
		{Name: "Terminal", Items: []doctor.CheckItem{{Label: "stdin", Status: doctor.StatusWarn}}},
	}
}

func TestOutputDoctorText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, outputDoctorText(&out, sampleResults()))

	text := tuitest.StripANSI(out.String())
	assert.Contains(t, text, "Dayplan Doctor")
	assert.Contains(t, text, "✔ values valid")
	assert.Contains(t, text, "● stdin")
	assert.Contains(t, text, "1 passed  1 warnings  0 failed")
}

func TestOutputDoctorText_FailureExits(t *testing.T) {
	results := []doctor.Result{{Name: "Logging", Items: []doctor.CheckItem{{Label: "log file", Status: doctor.StatusFail}}}}

	var out bytes.Buffer
	err := outputDoctorText(&out, results)
	require.Error(t, err)
	assert.Contains(t, tuitest.StripANSI(out.String()), "✘ log file")
}

func TestOutputDoctorJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, outputDoctorJSON(&out, sampleResults()))

	var got struct {
		Healthy bool        `json:"healthy"`
		Summary summaryJSON `json:"summary"`
		Checks  []struct {
			Name string `json:"name"`
		} `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))

	assert.True(t, got.Healthy)
	assert.Equal(t, summaryJSON{Passed: 1, Warned: 1}, got.Summary)
	require.Len(t, got.Checks, 2)
	assert.Equal(t, "Terminal", got.Checks[1].Name)
}
