package rendering

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/jonathan/portfolio-generator/internal/types"
)

// Archive renders the portfolio and packages it as a deployable zip with
// index.html and a deployment README.
func Archive(draft *types.PortfolioDraft, templateID string) ([]byte, error) {
	html, err := RenderHTML(draft, templateID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	if err := writeEntry(w, "index.html", html); err != nil {
		return nil, err
	}
	if err := writeEntry(w, "README.md", buildReadme(draft.Name)); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, &RenderError{Message: "failed to finalize archive", Cause: err}
	}

	return buf.Bytes(), nil
}

func writeEntry(w *zip.Writer, name, content string) error {
	f, err := w.Create(name)
	if err != nil {
		return &RenderError{Message: fmt.Sprintf("failed to add %s to archive", name), Cause: err}
	}
	if _, err := f.Write([]byte(content)); err != nil {
		return &RenderError{Message: fmt.Sprintf("failed to write %s", name), Cause: err}
	}
	return nil
}

func buildReadme(name string) string {
	return fmt.Sprintf(`# %s - Portfolio Website

This is your generated portfolio website. It's a single HTML file that's ready to deploy!

## Deployment Options

### GitHub Pages
1. Create a new repository on GitHub
2. Upload `+"`index.html`"+` to the repository
3. Go to Settings > Pages
4. Select "main" branch and save
5. Your site will be live at `+"`https://yourusername.github.io/repository-name`"+`

### Vercel
1. Visit https://vercel.com
2. Sign in and click "New Project"
3. Upload this folder
4. Your site will be deployed instantly!

### Netlify
1. Visit https://netlify.com
2. Drag and drop this folder to "Sites"
3. Your site is live!

## Customization
You can edit the HTML file directly to customize colors, fonts, and layout.
`, name)
}
