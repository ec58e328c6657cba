// Package dispatcher turns settings actions into use case calls.
package dispatcher

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/toolip/internal/application/usecase"
	"github.com/bnema/toolip/internal/domain/entity"
	"github.com/bnema/toolip/internal/logging"
)

// Kind names a settings action.
type Kind string

const (
	AddSite        Kind = "add_site"
	EditSite       Kind = "edit_site"
	DeleteSite     Kind = "delete_site"
	ReorderSite    Kind = "reorder_site"
	ImportSites    Kind = "import_sites"
	ExportSites    Kind = "export_sites"
	ResetSites     Kind = "reset_sites"
	ChangeTheme    Kind = "change_theme"
	SaveSites      Kind = "save_sites"
	DiscardChanges Kind = "discard_changes"
)

// Command is one user action. Only the fields its Kind reads are used:
//   - AddSite: Form
//   - EditSite: Index, Form
//   - DeleteSite: Index
//   - ReorderSite: Index (from), Target (to)
//   - ImportSites: Payload
//   - ChangeTheme: Theme
type Command struct {
	Kind    Kind
	Form    usecase.SiteForm
	Index   int
	Target  int
	Payload []byte
	Theme   entity.Theme
}

// Result is the editor state after a command.
type Result struct {
	Kind         Kind
	Sites        entity.SiteList
	EditingIndex int
	// Site is the added or edited site.
	Site entity.Site
	// Payload and Filename are set by ExportSites.
	Payload  []byte
	Filename string
	// OK reports whether the action took effect.
	OK  bool
	Err error
}

// Dispatcher routes commands to the site editor and the theme use case.
type Dispatcher struct {
	editor *usecase.SiteEditor
	theme  *usecase.ChangeThemeUseCase
	now    func() time.Time
}

// New creates a Dispatcher. The editor must already be loaded.
func New(editor *usecase.SiteEditor, theme *usecase.ChangeThemeUseCase) *Dispatcher {
	return &Dispatcher{editor: editor, theme: theme, now: time.Now}
}

// Dispatch runs cmd and returns the resulting state. Invalid input is
// reported through Result.Err; storage problems through Result.OK.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) Result {
	log := logging.FromContext(ctx)
	log.Debug().Str("command", string(cmd.Kind)).Msg("dispatching settings command")

	res := Result{Kind: cmd.Kind}

	switch cmd.Kind {
	case AddSite:
		d.editor.CancelEdit()
		res.Site, res.Err = d.editor.Submit(ctx, cmd.Form)
		res.OK = res.Err == nil
	case EditSite:
		if _, err := d.editor.BeginEdit(cmd.Index); err != nil {
			res.Err = err
			break
		}
		res.Site, res.Err = d.editor.Submit(ctx, cmd.Form)
		if res.Err != nil {
			d.editor.CancelEdit()
		}
		res.OK = res.Err == nil
	case DeleteSite:
		res.Err = d.editor.Delete(ctx, cmd.Index)
		res.OK = res.Err == nil
	case ReorderSite:
		res.OK, res.Err = d.editor.Move(ctx, cmd.Index, cmd.Target)
	case ImportSites:
		res.OK = d.editor.Import(ctx, cmd.Payload)
	case ExportSites:
		res.Payload, res.Err = d.editor.Export(ctx)
		res.Filename = usecase.ExportFilename(d.now())
		res.OK = res.Err == nil
	case ResetSites:
		d.editor.Reset(ctx)
		res.OK = true
	case ChangeTheme:
		if d.theme == nil {
			res.Err = fmt.Errorf("theme switching is not available")
			break
		}
		res.OK = d.theme.Change(ctx, cmd.Theme)
	case SaveSites:
		res.OK = d.editor.Save(ctx)
	case DiscardChanges:
		d.editor.Discard(ctx)
		res.OK = true
	default:
		res.Err = fmt.Errorf("unknown command %q", cmd.Kind)
		log.Warn().Str("command", string(cmd.Kind)).Msg("unhandled settings command")
	}

	res.Sites = d.editor.DisplaySites()
	res.EditingIndex = d.editor.EditingIndex()
	return res
}
