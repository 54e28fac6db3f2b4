package widget

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careersg/mycf-widgets/pkg/logging"
)

func testDescriptor() Descriptor {
	return Descriptor{
		ToolName:    "mycf-job-list",
		Title:       "MyCareersFuture job list",
		Description: "Job carousel widget",
		AssetGlob:   "mycareersfuture-*.html",
	}
}

func TestNewRegistryLoadsBuiltBundle(t *testing.T) {
	dir := t.TempDir()
	bundle := "<!doctype html><html><body>built widget</body></html>"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mycareersfuture-abc123.html"), []byte(bundle), 0o644))

	reg, err := NewRegistry(dir, []Descriptor{testDescriptor()}, logging.New("error"))
	require.NoError(t, err)

	ref, ok := reg.Resolve("mycf-job-list")
	require.True(t, ok)
	assert.Equal(t, "ui://widget/mycf-job-list.html", ref.URI)
	assert.Equal(t, "text/html+skybridge", ref.MIMEType)

	html, ok := reg.HTML("mycf-job-list")
	require.True(t, ok)
	assert.Equal(t, bundle, html)
}

func TestNewRegistryFallsBackToPlaceholder(t *testing.T) {
	reg, err := NewRegistry(t.TempDir(), []Descriptor{testDescriptor()}, logging.New("error"))
	require.NoError(t, err)

	html, ok := reg.HTML("mycf-job-list")
	require.True(t, ok)
	assert.True(t, strings.Contains(html, "Component Not Built"))
}

func TestNewRegistryPicksFirstBundleSorted(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mycareersfuture-bbb.html"), []byte("second"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mycareersfuture-aaa.html"), []byte("first"), 0o644))

	reg, err := NewRegistry(dir, []Descriptor{testDescriptor()}, logging.New("error"))
	require.NoError(t, err)

	html, _ := reg.HTML("mycf-job-list")
	assert.Equal(t, "first", html)
}

func TestNewRegistryRejectsBadManifests(t *testing.T) {
	log := logging.New("error")

	_, err := NewRegistry(t.TempDir(), nil, log)
	require.Error(t, err, "empty manifest is a startup defect")

	_, err = NewRegistry(t.TempDir(), []Descriptor{{Title: "nameless"}}, log)
	require.Error(t, err)

	_, err = NewRegistry(t.TempDir(), []Descriptor{testDescriptor(), testDescriptor()}, log)
	require.Error(t, err, "duplicate tool names must fail construction")

	d := testDescriptor()
	d.AssetGlob = ""
	_, err = NewRegistry(t.TempDir(), []Descriptor{d}, log)
	require.Error(t, err)
}

func TestResolveUnknownTool(t *testing.T) {
	reg, err := NewRegistry(t.TempDir(), []Descriptor{testDescriptor()}, logging.New("error"))
	require.NoError(t, err)

	_, ok := reg.Resolve("no-such-tool")
	assert.False(t, ok)
}

func TestMetaCarriesOutputTemplate(t *testing.T) {
	ref := Ref{URI: "ui://widget/mycf-job-list.html", MIMEType: MIMEType, Description: "Job carousel widget"}

	meta := Meta(ref)
	assert.Equal(t, ref.URI, meta["openai/outputTemplate"])
	assert.Equal(t, true, meta["openai/resultCanProduceWidget"])

	resMeta := ResourceMeta(ref)
	assert.Equal(t, "Job carousel widget", resMeta["openai/widgetDescription"])
	_, ok := meta["openai/widgetDescription"]
	assert.False(t, ok, "tool meta stays free of the resource-only description key")
}
