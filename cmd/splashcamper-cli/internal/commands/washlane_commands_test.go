//go:build unit
// +build unit

package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/splashcamper/splashcamper-api/internal/domain/washlanes"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLegacyStations = `[
	{"id":"station_77","name":"Lavomatic Camping du Lac","type":"wash","city":"Annecy","postalCode":"74000"},
	{"id":"station_78","name":"Aire du Lac","type":"parking","city":"Annecy","postalCode":"74000",
	 "washLanes":[{"laneNumber":1,"hasHighPressure":true}]}
]`

const testConfigTemplate = `port: "8080"
database:
  type: sqlite
  dsn: "file::memory:"
logger:
  log_level: info
  log_type: console
blob_connector:
  cloud_provider: azure
  connection_string: "UseDevelopmentStorage=true"
  container_name: station-images
auth:
  jwt_secret: "0123456789abcdef0123456789abcdef"
rate_limit:
  requests_per_second: 1
  burst: 1
legacy:
  file_path: %q
  brand_keywords:
    - "lavomatic"
`

func fmtConfig(legacyFile string) string {
	return fmt.Sprintf(testConfigTemplate, legacyFile)
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func runWashLanes(t *testing.T, args ...string) washLaneOutput {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")

	rootCmd := &cobra.Command{Use: "splashcamper-cli", SilenceUsage: true}
	rootCmd.PersistentFlags().String("config", "", "")
	require.NoError(t, InitWashLaneCommands(rootCmd))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"wash-lanes"}, args...))
	require.NoError(t, rootCmd.Execute())

	var result washLaneOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	return result
}

func TestWashLanesCmd_UsesConfiguredBrandKeywords(t *testing.T) {
	legacyFile := writeTestFile(t, "stations.json", testLegacyStations)
	configFile := writeTestFile(t, "rest-app.yaml", fmtConfig(legacyFile))

	res := runWashLanes(t, "--config", configFile, "--id", "station_77")
	assert.Equal(t, "station_77", res.StationID)
	assert.Equal(t, washlanes.SourceBrandDefault, res.Source)
	assert.Len(t, res.Lanes, len(washlanes.BrandDefault()))
}

func TestWashLanesCmd_DefaultsWithoutConfig(t *testing.T) {
	legacyFile := writeTestFile(t, "stations.json", testLegacyStations)

	res := runWashLanes(t, "--legacy-file", legacyFile, "--id", "station_77")
	assert.Equal(t, washlanes.SourceNone, res.Source)
	assert.NotNil(t, res.Lanes)
	assert.Empty(t, res.Lanes)

	res = runWashLanes(t, "--legacy-file", legacyFile, "--id", "station_78")
	assert.Equal(t, washlanes.SourceWashLanes, res.Source)
	assert.Equal(t, []washLaneOutputLane{{LaneNumber: 1, HasHighPressure: true}}, res.Lanes)
}
