package adminclient

import (
	"context"
	"fmt"

	"github.com/noievoi/backend/internal/model"
)

// ProjectForm drives the admin projects screen.
type ProjectForm struct {
	api   *Client
	guard requestGuard

	projects      []*model.Project
	mode          Mode
	selectedID    string
	pendingDelete string

	Title       string
	Description string
	Category    string
	Client      string
	Location    string
	Year        string
	ImageURL    string
	Featured    bool
}

// NewProjectForm returns a closed form backed by the given API client.
func NewProjectForm(api *Client) *ProjectForm {
	return &ProjectForm{api: api}
}

// Load refreshes the cached project list from the server.
func (f *ProjectForm) Load(ctx context.Context) error {
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	projects, err := f.api.ListProjects(ctx)
	if err != nil {
		return err
	}
	f.projects = projects
	return nil
}

// Projects returns the cached list, newest first.
func (f *ProjectForm) Projects() []*model.Project { return f.projects }

// Mode reports whether the form is closed, adding, or editing.
func (f *ProjectForm) Mode() Mode { return f.mode }

// PendingDelete returns the id armed for deletion, or "".
func (f *ProjectForm) PendingDelete() string { return f.pendingDelete }

// BeginAdd opens the form empty in add mode.
func (f *ProjectForm) BeginAdd() {
	f.mode = ModeAdd
	f.selectedID = ""
	f.Title = ""
	f.Description = ""
	f.Category = ""
	f.Client = ""
	f.Location = ""
	f.Year = ""
	f.ImageURL = ""
	f.Featured = false
}

// BeginEdit opens the form populated from an existing record.
func (f *ProjectForm) BeginEdit(p *model.Project) {
	f.mode = ModeEdit
	f.selectedID = p.ID
	f.Title = p.Title
	f.Description = p.Description
	f.Category = p.Category
	f.Client = p.Client
	f.Location = p.Location
	f.Year = p.Year
	f.ImageURL = p.ImageURL
	f.Featured = p.Featured
}

// Close abandons the open form without saving.
func (f *ProjectForm) Close() {
	f.mode = ModeClosed
	f.selectedID = ""
}

// Submit creates or updates depending on the mode. On mutation failure the
// form stays open with the input intact; once the change is committed the
// form closes even if the follow-up list reload fails.
func (f *ProjectForm) Submit(ctx context.Context) error {
	if f.mode == ModeClosed {
		return fmt.Errorf("no form open")
	}
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	in := ProjectInput{
		Title:       f.Title,
		Description: f.Description,
		Category:    f.Category,
		Client:      f.Client,
		Location:    f.Location,
		Year:        f.Year,
		ImageURL:    f.ImageURL,
		Featured:    f.Featured,
	}

	var err error
	if f.mode == ModeAdd {
		_, err = f.api.CreateProject(ctx, in)
	} else {
		_, err = f.api.UpdateProject(ctx, f.selectedID, in)
	}
	if err != nil {
		return err
	}
	f.mode = ModeClosed
	f.selectedID = ""

	projects, err := f.api.ListProjects(ctx)
	if err != nil {
		return err
	}
	f.projects = projects
	return nil
}

// ToggleFeatured flips the featured flag of one project in place.
func (f *ProjectForm) ToggleFeatured(ctx context.Context, id string) error {
	var target *model.Project
	for _, p := range f.projects {
		if p.ID == id {
			target = p
			break
		}
	}
	if target == nil {
		return fmt.Errorf("project %s not in loaded list", id)
	}

	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	in := ProjectInput{
		Title:       target.Title,
		Description: target.Description,
		Category:    target.Category,
		Client:      target.Client,
		Location:    target.Location,
		Year:        target.Year,
		ImageURL:    target.ImageURL,
		Featured:    !target.Featured,
	}
	updated, err := f.api.UpdateProject(ctx, id, in)
	if err != nil {
		return err
	}
	*target = *updated
	return nil
}

// RequestDelete arms a deletion. Nothing is sent until ConfirmDelete.
func (f *ProjectForm) RequestDelete(id string) { f.pendingDelete = id }

// CancelDelete disarms a pending deletion.
func (f *ProjectForm) CancelDelete() { f.pendingDelete = "" }

// ConfirmDelete issues the armed deletion and reloads the list.
func (f *ProjectForm) ConfirmDelete(ctx context.Context) error {
	if f.pendingDelete == "" {
		return ErrConfirmRequired
	}
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	if err := f.api.DeleteProject(ctx, f.pendingDelete); err != nil {
		return err
	}
	f.pendingDelete = ""

	projects, err := f.api.ListProjects(ctx)
	if err != nil {
		return err
	}
	f.projects = projects
	return nil
}
