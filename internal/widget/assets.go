package widget

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/careersg/mycf-widgets/pkg/logging"
)

// placeholderHTML renders build instructions when no built bundle exists, so
// a missing asset degrades visibly instead of breaking the tool.
const placeholderHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>MyCareersFuture Jobs</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
      padding: 2rem;
      text-align: center;
    }
    .error {
      background: #fee;
      border: 1px solid #fcc;
      padding: 1rem;
      border-radius: 8px;
      color: #c00;
    }
  </style>
</head>
<body>
  <div class="error">
    <h2>Component Not Built</h2>
    <p>
      Please run <code>pnpm install &amp;&amp; pnpm run build</code>
      to build the component.
    </p>
  </div>
  <div id="mycareersfuture-root"></div>
</body>
</html>`

// loadBundle reads the first bundle matching glob under assetsDir, falling
// back to placeholder markup when the build output is absent.
func loadBundle(assetsDir, glob string, log *logging.Logger) (string, error) {
	if glob == "" {
		return "", fmt.Errorf("asset glob is required")
	}

	matches, err := filepath.Glob(filepath.Join(assetsDir, glob))
	if err != nil {
		return "", fmt.Errorf("match assets %q: %w", glob, err)
	}

	if len(matches) == 0 {
		if log != nil {
			log.Warn("built widget bundle not found, serving placeholder", "dir", assetsDir, "glob", glob)
		}
		return placeholderHTML, nil
	}

	sort.Strings(matches)
	bundle := matches[0]

	data, err := os.ReadFile(bundle)
	if err != nil {
		return "", fmt.Errorf("read bundle %q: %w", bundle, err)
	}

	if log != nil {
		log.Info("loaded widget bundle", "path", bundle, "bytes", len(data))
	}

	return string(data), nil
}
