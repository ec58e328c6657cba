package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/bnema/toolip/internal/domain/entity"
	domainurl "github.com/bnema/toolip/internal/domain/url"
	"github.com/bnema/toolip/internal/logging"
)

const noIndex = -1

var (
	// ErrMissingFields is returned when the URL or title is empty.
	ErrMissingFields = errors.New("please fill in both URL and name fields")
	// ErrInvalidURL is returned when the URL cannot be parsed as an absolute URL.
	ErrInvalidURL = errors.New("please enter a valid URL")
)

// SiteForm carries the fields of the add/edit form.
type SiteForm struct {
	URL   string `validate:"required,url"`
	Title string `validate:"required"`
	Icon  string
}

func (f SiteForm) trimmed() SiteForm {
	return SiteForm{
		URL:   strings.TrimSpace(f.URL),
		Title: strings.TrimSpace(f.Title),
		Icon:  strings.TrimSpace(f.Icon),
	}
}

// SiteEditor is the working copy behind the settings surface.
// Changes stay local until Save is called.
type SiteEditor struct {
	registry *SiteRegistry
	validate *validator.Validate

	sites        entity.SiteList
	editingIndex int
	draggedIndex int
}

// NewSiteEditor creates an editor over registry. Call Load before use.
func NewSiteEditor(registry *SiteRegistry) *SiteEditor {
	return &SiteEditor{
		registry:     registry,
		validate:     validator.New(),
		editingIndex: noIndex,
		draggedIndex: noIndex,
	}
}

// Load replaces the working copy with the registry's stored list.
func (e *SiteEditor) Load(ctx context.Context) {
	e.sites = e.registry.StoredSites(ctx)
	logging.FromContext(ctx).Debug().Int("count", len(e.sites)).Msg("editor loaded sites")
}

// Sites returns a copy of the working list.
func (e *SiteEditor) Sites() entity.SiteList {
	return e.sites.Clone()
}

// DisplaySites returns the working list with automatic icons filled in.
func (e *SiteEditor) DisplaySites() entity.SiteList {
	return e.registry.withIcons(e.sites)
}

// EditingIndex returns the position being edited, or -1.
func (e *SiteEditor) EditingIndex() int {
	return e.editingIndex
}

// IsEditing returns true while a site is loaded into the form.
func (e *SiteEditor) IsEditing() bool {
	return e.editingIndex != noIndex
}

// DraggedIndex returns the position being dragged, or -1.
func (e *SiteEditor) DraggedIndex() int {
	return e.draggedIndex
}

// Validate checks a form without touching the list.
func (e *SiteEditor) Validate(form SiteForm) error {
	form = form.trimmed()
	if err := e.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Tag() == "required" {
					return ErrMissingFields
				}
			}
			return ErrInvalidURL
		}
		return fmt.Errorf("failed to validate site form: %w", err)
	}
	if !domainurl.IsAbsolute(form.URL) {
		return ErrInvalidURL
	}
	return nil
}

// Submit adds the form as a new site, or updates the site being edited.
// An edited site keeps its id; every other field comes from the form.
func (e *SiteEditor) Submit(ctx context.Context, form SiteForm) (entity.Site, error) {
	log := logging.FromContext(ctx)

	if err := e.Validate(form); err != nil {
		log.Debug().Err(err).Msg("site form rejected")
		return entity.Site{}, err
	}
	form = form.trimmed()

	site := entity.Site{
		URL:      form.URL,
		Title:    form.Title,
		Icon:     form.Icon,
		Category: entity.CategoryCustom,
	}
	if site.Icon == "" {
		site.Icon = e.registry.AutoIcon(form.URL)
	}

	if e.IsEditing() {
		updated, err := e.sites.Replace(e.editingIndex, site)
		if err != nil {
			return entity.Site{}, err
		}
		site = updated[e.editingIndex]
		e.sites = updated
		log.Debug().Str("id", string(site.ID)).Int("index", e.editingIndex).Msg("site updated")
		e.editingIndex = noIndex
		return site, nil
	}

	site.ID = e.registry.GenerateID()
	e.sites = e.sites.Append(site)
	log.Debug().Str("id", string(site.ID)).Str("url", site.URL).Msg("site added")
	return site, nil
}

// BeginEdit enters edit mode for position i and returns the prefilled form.
func (e *SiteEditor) BeginEdit(i int) (SiteForm, error) {
	if i < 0 || i >= len(e.sites) {
		return SiteForm{}, entity.ErrIndexOutOfRange
	}
	e.editingIndex = i
	s := e.sites[i]
	return SiteForm{URL: s.URL, Title: s.Title, Icon: s.Icon}, nil
}

// CancelEdit leaves edit mode without changes.
func (e *SiteEditor) CancelEdit() {
	e.editingIndex = noIndex
}

// Delete removes the site at i. Edit mode on i is cleared and an edit on a
// later position shifts down by one.
func (e *SiteEditor) Delete(ctx context.Context, i int) error {
	updated, err := e.sites.Remove(i)
	if err != nil {
		return err
	}
	e.sites = updated

	switch {
	case e.editingIndex == i:
		e.editingIndex = noIndex
	case e.editingIndex > i:
		e.editingIndex--
	}

	logging.FromContext(ctx).Debug().Int("index", i).Int("editing", e.editingIndex).Msg("site deleted")
	return nil
}

// StartDrag marks position i as the drag source.
func (e *SiteEditor) StartDrag(i int) error {
	if i < 0 || i >= len(e.sites) {
		return entity.ErrIndexOutOfRange
	}
	e.draggedIndex = i
	return nil
}

// Drop moves the dragged site to target. It reports whether the list changed;
// without a drag in progress, or onto the source itself, it is a no-op.
func (e *SiteEditor) Drop(ctx context.Context, target int) (bool, error) {
	if e.draggedIndex == noIndex || e.draggedIndex == target {
		return false, nil
	}
	if err := e.move(e.draggedIndex, target); err != nil {
		return false, err
	}

	logging.FromContext(ctx).Debug().Int("from", e.draggedIndex).Int("to", target).Msg("site reordered")
	return true, nil
}

// EndDrag clears the drag source.
func (e *SiteEditor) EndDrag() {
	e.draggedIndex = noIndex
}

// Move relocates the site at from to position to as a full drag gesture.
func (e *SiteEditor) Move(ctx context.Context, from, to int) (bool, error) {
	if err := e.StartDrag(from); err != nil {
		return false, err
	}
	defer e.EndDrag()
	return e.Drop(ctx, to)
}

func (e *SiteEditor) move(from, to int) error {
	updated, err := e.sites.Move(from, to)
	if err != nil {
		return err
	}
	e.sites = updated

	// edit mode follows the site it was opened on
	switch {
	case e.editingIndex == noIndex:
	case e.editingIndex == from:
		e.editingIndex = to
	case from < e.editingIndex && e.editingIndex <= to:
		e.editingIndex--
	case to <= e.editingIndex && e.editingIndex < from:
		e.editingIndex++
	}
	return nil
}

// Save persists the working list.
func (e *SiteEditor) Save(ctx context.Context) bool {
	return e.registry.SaveSites(ctx, e.sites)
}

// Discard drops unsaved changes and reloads the persisted list.
func (e *SiteEditor) Discard(ctx context.Context) {
	e.editingIndex = noIndex
	e.draggedIndex = noIndex
	e.Load(ctx)
}

// Import replaces the persisted list from an export payload and reloads.
func (e *SiteEditor) Import(ctx context.Context, payload []byte) bool {
	if !e.registry.ImportSites(ctx, payload) {
		return false
	}
	e.editingIndex = noIndex
	e.Load(ctx)
	return true
}

// Export returns the persisted list as an export payload.
func (e *SiteEditor) Export(ctx context.Context) ([]byte, error) {
	return e.registry.ExportJSON(ctx)
}

// ExportFilename returns the suggested download name for an export made at t.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("toolip-settings-%s.json", t.UTC().Format(time.DateOnly))
}

// Reset persists the default list and loads it into the editor.
func (e *SiteEditor) Reset(ctx context.Context) {
	e.editingIndex = noIndex
	e.registry.ResetToDefault(ctx)
	e.sites = e.registry.DefaultSites()
}

// AutoFill completes an empty title and icon from the form URL.
// Forms with an unparseable URL are returned unchanged.
func (e *SiteEditor) AutoFill(form SiteForm) SiteForm {
	title, ok := domainurl.SuggestTitle(form.URL)
	if !ok {
		return form
	}
	if strings.TrimSpace(form.Title) == "" {
		form.Title = title
	}
	if strings.TrimSpace(form.Icon) == "" {
		form.Icon = e.registry.AutoIcon(form.URL)
	}
	return form
}
