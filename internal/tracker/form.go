package tracker

import (
	"context"

	"github.com/dcdanielca/casetracker/internal/domain"
	"github.com/dcdanielca/casetracker/internal/schema"
)

// FormPhase is the lifecycle state of the create form:
// clean → editing → validating → {invalid | submitting → {succeeded | failed}}.
// Invalid and failed both return control to editing with prior values intact.
type FormPhase int

const (
	FormClean FormPhase = iota
	FormEditing
	FormValidating
	FormInvalid
	FormSubmitting
	FormSucceeded
	FormFailed
)

// CaseForm holds the draft input for a new case and drives validation and
// submission. It starts clean with a single empty query row.
type CaseForm struct {
	cmd *CreateCommand

	phase  FormPhase
	input  domain.CreateCaseInput
	errors map[string]string
}

// NewCaseForm creates a form bound to the given create command.
func NewCaseForm(cmd *CreateCommand) *CaseForm {
	if cmd == nil {
		panic("tracker.NewCaseForm: command must not be nil")
	}
	return &CaseForm{
		cmd:   cmd,
		phase: FormClean,
		input: domain.CreateCaseInput{
			Queries: []domain.CreateQueryInput{{}},
		},
	}
}

// Phase returns the current form phase.
func (f *CaseForm) Phase() FormPhase {
	return f.phase
}

// Values returns the current draft input.
func (f *CaseForm) Values() domain.CreateCaseInput {
	return f.input
}

// Errors returns the field errors from the last failed validation, keyed by
// wire path.
func (f *CaseForm) Errors() map[string]string {
	return f.errors
}

// Edit applies a mutation to the draft and moves the form into editing.
// Edits during submission are rejected.
func (f *CaseForm) Edit(mutate func(*domain.CreateCaseInput)) bool {
	if f.phase == FormSubmitting || f.phase == FormSucceeded {
		return false
	}
	mutate(&f.input)
	f.phase = FormEditing
	return true
}

// AddQuery appends an empty query row, up to the ten-row limit.
func (f *CaseForm) AddQuery() bool {
	if len(f.input.Queries) >= 10 {
		return false
	}
	return f.Edit(func(in *domain.CreateCaseInput) {
		in.Queries = append(in.Queries, domain.CreateQueryInput{})
	})
}

// RemoveQuery deletes the query row at index i. The last remaining row
// cannot be removed.
func (f *CaseForm) RemoveQuery(i int) bool {
	if len(f.input.Queries) <= 1 || i < 0 || i >= len(f.input.Queries) {
		return false
	}
	return f.Edit(func(in *domain.CreateCaseInput) {
		in.Queries = append(in.Queries[:i], in.Queries[i+1:]...)
	})
}

// Submit validates the draft and, when valid, executes the create command.
// Invalid drafts record field errors and block submission without any
// network call. A failed submission keeps all entered values so the user
// can correct and retry.
func (f *CaseForm) Submit(ctx context.Context) (*domain.Case, error) {
	if f.phase == FormSubmitting {
		return nil, domain.NewAppError(domain.CodeValidation, "Envío en curso", nil)
	}

	f.phase = FormValidating
	if errs := schema.ValidateCreateCase(f.input); errs != nil {
		f.phase = FormInvalid
		f.errors = errs
		return nil, domain.NewAppError(domain.CodeValidation, "Error de validación", nil)
	}
	f.errors = nil

	f.phase = FormSubmitting
	created, err := f.cmd.Execute(ctx, f.input)
	if err != nil {
		f.phase = FormFailed
		return nil, err
	}

	f.phase = FormSucceeded
	return created, nil
}
