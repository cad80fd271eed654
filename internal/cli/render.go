package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Almaash/community-app-admin/internal/service"
	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
)

// printJSON writes v to the app's output as indented JSON.
func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// RenderError writes err as a user-facing notice. Every failure ends here
// rather than in a crash; the user always lands back at a usable prompt.
func RenderError(out io.Writer, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		fmt.Fprintf(out, "error: %s\n", appErr.Message)
		return
	}
	fmt.Fprintf(out, "error: %v\n", err)
}

// openUpload opens path as a multipart upload. The returned closer must be
// called after the request finishes.
func openUpload(path string) (service.Upload, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return service.Upload{}, nil, fmt.Errorf("open upload %q: %w", path, err)
	}
	return service.Upload{Filename: filepath.Base(f.Name()), Content: f}, f.Close, nil
}

// stringList collects a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}
