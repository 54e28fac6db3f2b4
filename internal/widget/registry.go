package widget

import (
	"fmt"

	"github.com/careersg/mycf-widgets/pkg/logging"
)

// MIMEType marks widget bundles as HTML-plus-script content meant for inline
// rendering by a compatible host.
const MIMEType = "text/html+skybridge"

// Ref points a tool at its pre-built widget bundle
type Ref struct {
	URI         string
	MIMEType    string
	Title       string
	Description string
}

// Descriptor declares one tool's widget; the wiring layer owns the full list
type Descriptor struct {
	ToolName    string
	Title       string
	Description string
	// Glob (relative to the assets dir) matching the built bundle
	AssetGlob string
}

// Registry is the immutable tool-to-widget mapping, built once at startup.
// A missing mapping is a configuration defect and fails construction; Resolve
// never fails at request time for a registered tool.
type Registry struct {
	refs map[string]Ref
	html map[string]string
}

// NewRegistry loads every declared widget bundle and freezes the mapping
func NewRegistry(assetsDir string, descriptors []Descriptor, log *logging.Logger) (*Registry, error) {
	if len(descriptors) == 0 {
		return nil, fmt.Errorf("widget: at least one descriptor is required")
	}

	reg := &Registry{
		refs: make(map[string]Ref, len(descriptors)),
		html: make(map[string]string, len(descriptors)),
	}

	for _, d := range descriptors {
		if d.ToolName == "" {
			return nil, fmt.Errorf("widget: descriptor with empty tool name")
		}
		if _, ok := reg.refs[d.ToolName]; ok {
			return nil, fmt.Errorf("widget: duplicate descriptor for tool %q", d.ToolName)
		}

		html, err := loadBundle(assetsDir, d.AssetGlob, log)
		if err != nil {
			return nil, fmt.Errorf("widget: load bundle for tool %q: %w", d.ToolName, err)
		}

		reg.refs[d.ToolName] = Ref{
			URI:         fmt.Sprintf("ui://widget/%s.html", d.ToolName),
			MIMEType:    MIMEType,
			Title:       d.Title,
			Description: d.Description,
		}
		reg.html[d.ToolName] = html
	}

	return reg, nil
}

// Resolve maps a tool name to its widget reference
func (r *Registry) Resolve(toolName string) (Ref, bool) {
	ref, ok := r.refs[toolName]
	return ref, ok
}

// HTML returns the loaded bundle markup for a tool
func (r *Registry) HTML(toolName string) (string, bool) {
	html, ok := r.html[toolName]
	return html, ok
}

// Tools lists every registered tool name
func (r *Registry) Tools() []string {
	out := make([]string, 0, len(r.refs))
	for name := range r.refs {
		out = append(out, name)
	}
	return out
}

// Meta builds the host-facing metadata block shared by the tool descriptor,
// the tool result, and the widget resource.
func Meta(ref Ref) map[string]any {
	return map[string]any{
		"openai/outputTemplate":          ref.URI,
		"openai/toolInvocation/invoking": "Gathering job listings…",
		"openai/toolInvocation/invoked":  "Job listings ready.",
		"openai/widgetAccessible":        true,
		"openai/resultCanProduceWidget":  true,
		"annotations": map[string]any{
			"destructiveHint": false,
			"openWorldHint":   false,
			"readOnlyHint":    true,
		},
	}
}

// ResourceMeta extends Meta with the widget description for resource listings
func ResourceMeta(ref Ref) map[string]any {
	meta := Meta(ref)
	meta["openai/widgetDescription"] = ref.Description
	return meta
}
