package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderToStdout(t *testing.T) {
	cmd := newRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--replicas", "5", "--image", "registry.example.com/greetsvc:v1"})

	require.NoError(t, cmd.Execute())

	rendered := out.String()
	assert.Contains(t, rendered, "kind: Deployment")
	assert.Contains(t, rendered, "kind: Service")
	assert.Contains(t, rendered, "replicas: 5")
	assert.Contains(t, rendered, "registry.example.com/greetsvc:v1")

	// Both documents in one stream
	assert.Equal(t, 2, strings.Count(rendered, "apiVersion:"))
}

func TestRenderToDirectory(t *testing.T) {
	dir := t.TempDir()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--output", dir})

	require.NoError(t, cmd.Execute())

	deployment, err := os.ReadFile(filepath.Join(dir, "deployment.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(deployment), "kind: Deployment")

	service, err := os.ReadFile(filepath.Join(dir, "service.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(service), "type: LoadBalancer")
}
