package journal

import "fmt"

// FormState is the state of the entry form.
//
//	Idle -> Submitting -> Success -> Idle
//	                   -> Error   -> Idle
type FormState int

const (
	FormIdle FormState = iota
	FormSubmitting
	FormSuccess
	FormError
)

func (s FormState) String() string {
	switch s {
	case FormIdle:
		return "idle"
	case FormSubmitting:
		return "submitting"
	case FormSuccess:
		return "success"
	case FormError:
		return "error"
	}
	return fmt.Sprintf("FormState(%d)", int(s))
}

// NoticeKind classifies the message shown under the form.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeSuccess
	NoticeError
	NoticeValidation
)

// Notice is a user-facing message produced by the form or the feed.
type Notice struct {
	Kind NoticeKind
	Text string
}

// Empty reports whether there is nothing to show.
func (n Notice) Empty() bool {
	return n.Kind == NoticeNone
}

// Messages shown by the form.
const (
	SavedMessage        = "Entry saved"
	SaveFailedMessage   = "Failed to save entry"
	RefreshFailedNotice = "Failed to load entries"
	EmptyContentMessage = "Please write something before saving"
	MoodRangeMessage    = "Mood must be between 1 and 5"
)

// Form owns the draft and the submit lifecycle. The zero value is not
// ready for use; call NewForm.
type Form struct {
	draft  Draft
	state  FormState
	notice Notice
}

// NewForm returns an idle form with a default draft.
func NewForm() Form {
	return Form{draft: NewDraft()}
}

// State returns the current state.
func (f *Form) State() FormState { return f.state }

// Draft returns a copy of the draft.
func (f *Form) Draft() Draft { return f.draft }

// Notice returns the message to show, if any.
func (f *Form) Notice() Notice { return f.notice }

// Busy reports whether a submit is in flight.
func (f *Form) Busy() bool { return f.state == FormSubmitting }

// SetMood updates the draft mood, clamped to the valid range.
func (f *Form) SetMood(mood int) error {
	if f.Busy() {
		return fmt.Errorf("%w: cannot edit while %s", ErrInvalidTransition, f.state)
	}
	f.draft.Mood = ClampMood(mood)
	f.clearNotice()
	return nil
}

// SetActivities updates the raw activities text.
func (f *Form) SetActivities(text string) error {
	if f.Busy() {
		return fmt.Errorf("%w: cannot edit while %s", ErrInvalidTransition, f.state)
	}
	f.draft.ActivitiesText = text
	f.clearNotice()
	return nil
}

// SetContent updates the draft content.
func (f *Form) SetContent(content string) error {
	if f.Busy() {
		return fmt.Errorf("%w: cannot edit while %s", ErrInvalidTransition, f.state)
	}
	f.draft.Content = content
	f.clearNotice()
	return nil
}

// Begin moves Idle -> Submitting and returns the request to send. An
// invalid draft returns a *ValidationError, sets a validation notice and
// keeps the form Idle; nothing must be sent in that case.
func (f *Form) Begin() (NewEntry, error) {
	if f.state != FormIdle {
		return NewEntry{}, fmt.Errorf("%w: submit while %s", ErrInvalidTransition, f.state)
	}
	if err := f.draft.Validate(); err != nil {
		f.notice = Notice{Kind: NoticeValidation, Text: err.(*ValidationError).Message}
		return NewEntry{}, err
	}

	f.state = FormSubmitting
	f.notice = Notice{}
	return f.draft.Request(), nil
}

// Succeed moves Submitting -> Success and resets the draft. The caller
// refreshes the feed exactly once afterwards.
func (f *Form) Succeed() error {
	if f.state != FormSubmitting {
		return fmt.Errorf("%w: success while %s", ErrInvalidTransition, f.state)
	}
	f.state = FormSuccess
	f.draft = NewDraft()
	f.notice = Notice{Kind: NoticeSuccess, Text: SavedMessage}
	return nil
}

// Fail moves Submitting -> Error, keeping the draft. message is shown as
// is; an empty message falls back to SaveFailedMessage.
func (f *Form) Fail(message string) error {
	if f.state != FormSubmitting {
		return fmt.Errorf("%w: failure while %s", ErrInvalidTransition, f.state)
	}
	if message == "" {
		message = SaveFailedMessage
	}
	f.state = FormError
	f.notice = Notice{Kind: NoticeError, Text: message}
	return nil
}

// Acknowledge moves Success or Error back to Idle and clears the notice.
func (f *Form) Acknowledge() error {
	if f.state != FormSuccess && f.state != FormError {
		return fmt.Errorf("%w: acknowledge while %s", ErrInvalidTransition, f.state)
	}
	f.state = FormIdle
	f.notice = Notice{}
	return nil
}

// Settle moves Success or Error back to Idle but leaves the notice up until
// the next edit or submit.
func (f *Form) Settle() error {
	if f.state != FormSuccess && f.state != FormError {
		return fmt.Errorf("%w: settle while %s", ErrInvalidTransition, f.state)
	}
	f.state = FormIdle
	return nil
}

// Dismiss clears the notice, returning a Success or Error form to Idle. It
// does nothing while submitting.
func (f *Form) Dismiss() {
	if f.Busy() {
		return
	}
	f.state = FormIdle
	f.notice = Notice{}
}

// clearNotice drops validation notices and notices left by Settle.
func (f *Form) clearNotice() {
	if f.notice.Kind == NoticeValidation || f.state == FormIdle {
		f.notice = Notice{}
	}
}
