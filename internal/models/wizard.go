package models

// Wizard step cursor values. Steps 1..WizardSteps are form pages; StepSuccess
// is the terminal state and is only reachable through Complete.
const StepSuccess = 0

// Wizard holds the state of a multi-step booking form between requests. It
// travels through the HTTP session as a JSON string.
type Wizard struct {
	Step        int               `json:"step"`
	Data        BookingFormData   `json:"data"`
	Errors      map[string]string `json:"errors,omitempty"`
	SubmitError string            `json:"submit_error,omitempty"`
}

// NewWizard returns a wizard positioned on the first step.
func NewWizard() *Wizard {
	return &Wizard{Step: 1}
}

// Next validates the current step and advances when it is clean. It reports
// whether the step was advanced.
func (w *Wizard) Next() bool {
	if w.Step < 1 || w.Step >= WizardSteps {
		return false
	}

	errs := w.Data.ValidateStep(w.Step)
	if len(errs) > 0 {
		w.Errors = errs
		return false
	}

	w.Errors = nil
	w.Step++
	return true
}

// Back moves to the previous step unconditionally. Entered data and field
// errors are kept; only the submit error is cleared.
func (w *Wizard) Back() {
	if w.Step > 1 && w.Step <= WizardSteps {
		w.Step--
	}
	w.SubmitError = ""
}

// Submit validates the final step and reports whether the form may be sent.
// The success transition happens via Complete once the lead is persisted.
func (w *Wizard) Submit() bool {
	if w.Step != WizardSteps {
		return false
	}

	errs := w.Data.ValidateStep(WizardSteps)
	if len(errs) > 0 {
		w.Errors = errs
		return false
	}

	w.Errors = nil
	return true
}

// Complete moves the wizard into the terminal success state.
func (w *Wizard) Complete() {
	w.Step = StepSuccess
	w.Errors = nil
	w.SubmitError = ""
}

// IsComplete reports whether the wizard reached the success state.
func (w *Wizard) IsComplete() bool {
	return w.Step == StepSuccess
}

// Reset reinitializes all fields and returns to the first step, for the
// "new request" action on the success screen.
func (w *Wizard) Reset() {
	*w = *NewWizard()
}
