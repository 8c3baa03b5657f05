package tracker

import (
	"context"

	"github.com/dcdanielca/casetracker/internal/domain"
)

// Notification texts shown by the create command.
const (
	msgCaseCreated  = "Caso creado exitosamente"
	msgCreateFailed = "Error al crear el caso"
)

// Notifier surfaces transient user notifications.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator moves the presentation layer to another view.
type Navigator interface {
	NavigateTo(path string)
}

// ListInvalidator drops cached list results so the next list view is fresh.
type ListInvalidator interface {
	InvalidateLists()
}

// CaseDetailPath is the navigation path for a case's detail view.
func CaseDetailPath(id string) string {
	return "/cases/" + id
}

// CreateCommand submits an already-validated case creation input. It makes
// exactly one request per invocation and never retries.
//
// On success it invalidates cached list pages, raises a success
// notification, and navigates to the new case's detail view. On failure it
// raises an error notification carrying the backend's detail message when
// available and does not navigate, leaving form state untouched for
// correction and resubmission.
type CreateCommand struct {
	api      CaseAPI
	lists    ListInvalidator
	notifier Notifier
	nav      Navigator
}

// NewCreateCommand wires a create command. lists may be nil when no list
// session exists in the consuming process.
func NewCreateCommand(api CaseAPI, lists ListInvalidator, notifier Notifier, nav Navigator) *CreateCommand {
	if api == nil {
		panic("tracker.NewCreateCommand: api must not be nil")
	}
	if notifier == nil {
		panic("tracker.NewCreateCommand: notifier must not be nil")
	}
	if nav == nil {
		panic("tracker.NewCreateCommand: navigator must not be nil")
	}
	return &CreateCommand{api: api, lists: lists, notifier: notifier, nav: nav}
}

// Execute submits in and returns the persisted case.
func (c *CreateCommand) Execute(ctx context.Context, in domain.CreateCaseInput) (*domain.Case, error) {
	created, err := c.api.CreateCase(ctx, in)
	if err != nil {
		c.notifier.Error(domain.Message(err, msgCreateFailed))
		return nil, err
	}

	if c.lists != nil {
		c.lists.InvalidateLists()
	}
	c.notifier.Success(msgCaseCreated)
	c.nav.NavigateTo(CaseDetailPath(created.ID))
	return created, nil
}
