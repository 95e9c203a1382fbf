package adminclient

import (
	"context"
	"fmt"

	"github.com/noievoi/backend/internal/model"
)

// TeamForm drives the admin team screen.
type TeamForm struct {
	api   *Client
	guard requestGuard

	members       []*model.TeamMember
	mode          Mode
	selectedID    string
	pendingDelete string

	Name        string
	Position    string
	Location    string
	Bio         string
	ImageColor  string
	Email       string
	LinkedinURL string
	TwitterURL  string
	ImageURL    string
}

// NewTeamForm returns a closed form backed by the given API client.
func NewTeamForm(api *Client) *TeamForm {
	return &TeamForm{api: api}
}

// Load refreshes the cached member list from the server.
func (f *TeamForm) Load(ctx context.Context) error {
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	members, err := f.api.ListTeamMembers(ctx)
	if err != nil {
		return err
	}
	f.members = members
	return nil
}

// Members returns the cached list in name order.
func (f *TeamForm) Members() []*model.TeamMember { return f.members }

// Mode reports whether the form is closed, adding, or editing.
func (f *TeamForm) Mode() Mode { return f.mode }

// PendingDelete returns the id armed for deletion, or "".
func (f *TeamForm) PendingDelete() string { return f.pendingDelete }

// BeginAdd opens the form in add mode with the default avatar color.
func (f *TeamForm) BeginAdd() {
	f.mode = ModeAdd
	f.selectedID = ""
	f.Name = ""
	f.Position = ""
	f.Location = ""
	f.Bio = ""
	f.ImageColor = model.DefaultImageColor
	f.Email = ""
	f.LinkedinURL = ""
	f.TwitterURL = ""
	f.ImageURL = ""
}

// BeginEdit opens the form populated from an existing record.
func (f *TeamForm) BeginEdit(m *model.TeamMember) {
	f.mode = ModeEdit
	f.selectedID = m.ID
	f.Name = m.Name
	f.Position = m.Position
	f.Location = m.Location
	f.Bio = m.Bio
	f.ImageColor = m.ImageColor
	f.Email = m.Email
	f.LinkedinURL = m.LinkedinURL
	f.TwitterURL = m.TwitterURL
	f.ImageURL = m.ImageURL
}

// Close abandons the open form without saving.
func (f *TeamForm) Close() {
	f.mode = ModeClosed
	f.selectedID = ""
}

// Submit creates or updates depending on the mode. On mutation failure the
// form stays open with the input intact; once the change is committed the
// form closes even if the follow-up list reload fails.
func (f *TeamForm) Submit(ctx context.Context) error {
	if f.mode == ModeClosed {
		return fmt.Errorf("no form open")
	}
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	in := TeamMemberInput{
		Name:        f.Name,
		Position:    f.Position,
		Location:    f.Location,
		Bio:         f.Bio,
		ImageColor:  f.ImageColor,
		Email:       f.Email,
		LinkedinURL: f.LinkedinURL,
		TwitterURL:  f.TwitterURL,
		ImageURL:    f.ImageURL,
	}

	var err error
	if f.mode == ModeAdd {
		_, err = f.api.CreateTeamMember(ctx, in)
	} else {
		_, err = f.api.UpdateTeamMember(ctx, f.selectedID, in)
	}
	if err != nil {
		return err
	}
	f.mode = ModeClosed
	f.selectedID = ""

	members, err := f.api.ListTeamMembers(ctx)
	if err != nil {
		return err
	}
	f.members = members
	return nil
}

// RequestDelete arms a deletion. Nothing is sent until ConfirmDelete.
func (f *TeamForm) RequestDelete(id string) { f.pendingDelete = id }

// CancelDelete disarms a pending deletion.
func (f *TeamForm) CancelDelete() { f.pendingDelete = "" }

// ConfirmDelete issues the armed deletion and reloads the list.
func (f *TeamForm) ConfirmDelete(ctx context.Context) error {
	if f.pendingDelete == "" {
		return ErrConfirmRequired
	}
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	if err := f.api.DeleteTeamMember(ctx, f.pendingDelete); err != nil {
		return err
	}
	f.pendingDelete = ""

	members, err := f.api.ListTeamMembers(ctx)
	if err != nil {
		return err
	}
	f.members = members
	return nil
}
