package cmd

import (
	"fmt"
	"io"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/tassiovirginio/try-rs/internal/app"
	"github.com/tassiovirginio/try-rs/internal/catalog"
	"github.com/tassiovirginio/try-rs/internal/config"
	"github.com/tassiovirginio/try-rs/internal/errors"
	"github.com/tassiovirginio/try-rs/internal/logging"
	"github.com/tassiovirginio/try-rs/internal/tui"
)

// finish turns a picker result into the command printed for the shell
// wrapper. Nothing is printed when the user aborted.
func finish(w io.Writer, a *app.App, s *config.Settings, r tui.Result) error {
	var name string
	switch r.Selection.Kind {
	case tui.SelectNone:
		return nil

	case tui.SelectFolder:
		name = r.Selection.Name

	case tui.SelectNew:
		name = r.Selection.Name
		if s.ApplyDatePrefix {
			name = catalog.WithDatePrefix(name, a.Now())
		}
	}

	path, err := a.EntryPath(name)
	if err != nil {
		return errors.ValidationError(err.Error())
	}
	if r.Selection.Kind == tui.SelectNew {
		if err := a.FS.MkdirAll(path, 0755); err != nil {
			return errors.WorkspaceError("create", err)
		}
		logging.Debug("created folder", "path", path)
	}

	if r.WantsEditor {
		return emitEditor(w, s.Editor, path)
	}
	return emitCd(w, path)
}

// singleQuote quotes p for POSIX shells. The wrappers expect the path in
// exactly this form, so shellquote's minimal quoting is not used here.
func singleQuote(p string) string {
	return "'" + strings.ReplaceAll(p, "'", `'\''`) + "'"
}

func emitCd(w io.Writer, path string) error {
	_, err := fmt.Fprintf(w, "cd %s\n", singleQuote(path))
	return err
}

// emitEditor prints "<editor> '<path>'". The editor setting may carry
// arguments ("code --wait"); it is split and re-joined so a malformed value
// is rejected instead of evaluated.
func emitEditor(w io.Writer, editor, path string) error {
	words, err := shellquote.Split(editor)
	if err != nil {
		return errors.ConfigError(fmt.Sprintf("invalid editor command %q", editor), err)
	}
	if len(words) == 0 {
		return errors.ConfigError("no editor configured", nil)
	}
	_, err = fmt.Fprintf(w, "%s %s\n", shellquote.Join(words...), singleQuote(path))
	return err
}
