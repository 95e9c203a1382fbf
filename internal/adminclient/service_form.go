package adminclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/noievoi/backend/internal/model"
	"github.com/noievoi/backend/pkg/slug"
)

// benefitsTemplate pre-fills the benefits editor when adding a service, so
// the expected shape is visible without reading docs.
const benefitsTemplate = `[
  {
    "title": "Benefit Title",
    "description": "Benefit description goes here."
  }
]`

// ServiceForm drives the admin services screen: the cached service list, the
// add/edit form fields, and the delete confirmation. Benefits are edited as
// free-form JSON text and validated locally before anything hits the network.
type ServiceForm struct {
	api   *Client
	guard requestGuard

	services      []*model.Service
	mode          Mode
	selectedID    string
	pendingDelete string
	order         int

	Title        string
	Slug         string
	Description  string
	ImagePath    string
	Icon         string
	BenefitsText string
	Published    bool
}

// NewServiceForm returns a closed form backed by the given API client.
func NewServiceForm(api *Client) *ServiceForm {
	return &ServiceForm{api: api}
}

// Load refreshes the cached service list from the server.
func (f *ServiceForm) Load(ctx context.Context) error {
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	services, err := f.api.ListServices(ctx)
	if err != nil {
		return err
	}
	f.services = services
	return nil
}

// Services returns the cached list in display order.
func (f *ServiceForm) Services() []*model.Service { return f.services }

// Mode reports whether the form is closed, adding, or editing.
func (f *ServiceForm) Mode() Mode { return f.mode }

// PendingDelete returns the id armed for deletion, or "".
func (f *ServiceForm) PendingDelete() string { return f.pendingDelete }

// BeginAdd opens the form in add mode with defaults filled in.
func (f *ServiceForm) BeginAdd() {
	f.mode = ModeAdd
	f.selectedID = ""
	f.order = 0
	f.Title = ""
	f.Slug = ""
	f.Description = ""
	f.ImagePath = ""
	f.Icon = model.DefaultServiceIcon
	f.BenefitsText = benefitsTemplate
	f.Published = true
}

// BeginEdit opens the form in edit mode populated from an existing record.
func (f *ServiceForm) BeginEdit(s *model.Service) {
	f.mode = ModeEdit
	f.selectedID = s.ID
	f.order = s.Order
	f.Title = s.Title
	f.Slug = s.Slug
	f.Description = s.Description
	f.ImagePath = s.ImagePath
	f.Icon = s.Icon
	f.Published = s.Published

	if len(s.Benefits) == 0 {
		f.BenefitsText = "[]"
	} else {
		b, err := json.MarshalIndent(s.Benefits, "", "  ")
		if err != nil {
			f.BenefitsText = "[]"
		} else {
			f.BenefitsText = string(b)
		}
	}
}

// SetTitle updates the title and re-derives the slug from it. Editing the
// slug directly afterwards is allowed; the next SetTitle overwrites it again.
func (f *ServiceForm) SetTitle(title string) {
	f.Title = title
	f.Slug = slug.Make(title)
}

// Close abandons the open form without saving.
func (f *ServiceForm) Close() {
	f.mode = ModeClosed
	f.selectedID = ""
}

func (f *ServiceForm) parseBenefits() ([]model.ServiceBenefit, error) {
	text := strings.TrimSpace(f.BenefitsText)
	if text == "" {
		return nil, nil
	}
	var benefits []model.ServiceBenefit
	if err := json.Unmarshal([]byte(text), &benefits); err != nil {
		return nil, ErrInvalidBenefits
	}
	return benefits, nil
}

// Submit creates or updates depending on the mode. On mutation failure the
// form stays open with the input intact; once the server has committed the
// change the form closes even if the follow-up list reload fails, since
// re-submitting would duplicate the write.
func (f *ServiceForm) Submit(ctx context.Context) error {
	if f.mode == ModeClosed {
		return fmt.Errorf("no form open")
	}

	// ベネフィットはローカルで検証する。壊れた JSON はサーバーに送らない。
	benefits, err := f.parseBenefits()
	if err != nil {
		return err
	}

	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	in := ServiceInput{
		Title:       f.Title,
		Slug:        f.Slug,
		Description: f.Description,
		ImagePath:   f.ImagePath,
		Icon:        f.Icon,
		Benefits:    benefits,
		Published:   f.Published,
	}

	if f.mode == ModeAdd {
		_, err = f.api.CreateService(ctx, in)
	} else {
		order := f.order
		in.Order = &order
		_, err = f.api.UpdateService(ctx, f.selectedID, in)
	}
	if err != nil {
		return err
	}
	f.mode = ModeClosed
	f.selectedID = ""

	services, err := f.api.ListServices(ctx)
	if err != nil {
		return err
	}
	f.services = services
	return nil
}

// TogglePublished flips the published flag of one service in place, keeping
// every other field as stored.
func (f *ServiceForm) TogglePublished(ctx context.Context, id string) error {
	var target *model.Service
	for _, s := range f.services {
		if s.ID == id {
			target = s
			break
		}
	}
	if target == nil {
		return fmt.Errorf("service %s not in loaded list", id)
	}

	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	order := target.Order
	in := ServiceInput{
		Title:       target.Title,
		Slug:        target.Slug,
		Description: target.Description,
		ImagePath:   target.ImagePath,
		Icon:        target.Icon,
		Benefits:    target.Benefits,
		Order:       &order,
		Published:   !target.Published,
	}
	updated, err := f.api.UpdateService(ctx, id, in)
	if err != nil {
		return err
	}
	*target = *updated
	return nil
}

// RequestDelete arms a deletion. Nothing is sent until ConfirmDelete.
func (f *ServiceForm) RequestDelete(id string) { f.pendingDelete = id }

// CancelDelete disarms a pending deletion.
func (f *ServiceForm) CancelDelete() { f.pendingDelete = "" }

// ConfirmDelete issues the armed deletion and reloads the list.
func (f *ServiceForm) ConfirmDelete(ctx context.Context) error {
	if f.pendingDelete == "" {
		return ErrConfirmRequired
	}
	if err := f.guard.begin(); err != nil {
		return err
	}
	defer f.guard.end()

	if err := f.api.DeleteService(ctx, f.pendingDelete); err != nil {
		return err
	}
	f.pendingDelete = ""

	services, err := f.api.ListServices(ctx)
	if err != nil {
		return err
	}
	f.services = services
	return nil
}
