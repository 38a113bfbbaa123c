// Package binder feeds submitted form values into an editor. It is the thin
// seam between net/http and the editor/validator pair: values are applied as
// raw strings, validation failures stay inside the editor's properties, and
// only transport-level problems (wrong content type, unparsable body) come
// back as errors.
package binder

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/editor"
)

// Apply sets every editor field that appears in values, in the editor's
// binding order. The first form value wins for multi-value fields; form keys
// without a bound field are ignored, and bound fields absent from the form
// keep their state. Validation failures land in the properties; any other
// error from a validating function stops the application and is returned.
func Apply(ed *editor.Editor, values url.Values) error {
	for _, name := range ed.Names() {
		vs, ok := values[name]
		if !ok || len(vs) == 0 {
			continue
		}
		if err := ed.Set(name, vs[0]); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}
	return nil
}

// BindRequest parses an application/x-www-form-urlencoded request body and
// applies it with Apply.
func BindRequest(r *http.Request, ed *editor.Editor) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/x-www-form-urlencoded", ErrMissingContentType)
	}

	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}
	if mediaType != "application/x-www-form-urlencoded" {
		return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mediaType)
	}

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
	}

	return Apply(ed, r.PostForm)
}
