package web

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"
)

// TemplateRenderer handles template rendering with pongo2
type TemplateRenderer struct {
	templateSet *pongo2.TemplateSet
}

// NewTemplateRenderer creates a new template renderer
func NewTemplateRenderer(templateDir string) (*TemplateRenderer, error) {
	if templateDir == "" {
		return nil, fmt.Errorf("template directory is required")
	}

	if _, err := os.Stat(templateDir); err != nil {
		return nil, fmt.Errorf("template directory not found: %v", err)
	}

	abs, _ := filepath.Abs(templateDir)

	templateSet := pongo2.NewSet("deskd", pongo2.MustNewLocalFileSystemLoader(abs))

	return &TemplateRenderer{
		templateSet: templateSet,
	}, nil
}

// HTML renders a template
func (r *TemplateRenderer) HTML(c *gin.Context, code int, name string, data interface{}) {
	var ctx pongo2.Context
	switch v := data.(type) {
	case pongo2.Context:
		ctx = v
	case gin.H:
		ctx = pongo2.Context(v)
	default:
		ctx = pongo2.Context{"data": data}
	}

	tmpl, err := r.templateSet.FromFile(name)
	if err != nil {
		c.String(code, "Template not found: %s", name)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(code)

	if err := tmpl.ExecuteWriter(ctx, c.Writer); err != nil {
		c.String(http.StatusInternalServerError, "Template execution error: %v", err)
	}
}
