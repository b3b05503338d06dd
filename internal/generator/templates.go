package generator

import (
	"embed"
	"fmt"
	"sync"
	"text/template"
)

const (
	tmplFile        = "file"
	tmplSchema      = "schema"
	tmplRegular     = "regular"
	tmplOptional    = "optional"
	tmplCombine     = "combine"
	tmplDispatch    = "dispatch"
	templatePattern = "templates/*.gtpl"
)

//go:embed templates/*.gtpl
var templatesFS embed.FS

var (
	fileTmpl     *template.Template
	tmplInitOnce sync.Once
	tmplInitErr  error
)

// validateTemplates ensures all required templates are defined.
func validateTemplates() error {
	requiredTemplates := []string{
		tmplFile,
		tmplSchema,
		tmplRegular,
		tmplOptional,
		tmplCombine,
		tmplDispatch,
	}
	for _, name := range requiredTemplates {
		if fileTmpl.Lookup(name) == nil {
			return fmt.Errorf("required template %q not found", name)
		}
	}
	return nil
}

// ensureTemplates parses and validates templates exactly once.
func ensureTemplates() error {
	tmplInitOnce.Do(func() {
		var t *template.Template
		t, tmplInitErr = template.New(tmplFile).ParseFS(templatesFS, templatePattern)
		if tmplInitErr != nil {
			return
		}
		fileTmpl = t
		tmplInitErr = validateTemplates()
	})
	return tmplInitErr
}
