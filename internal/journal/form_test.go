package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_InitialState(t *testing.T) {
	f := NewForm()

	assert.Equal(t, FormIdle, f.State())
	assert.Equal(t, NewDraft(), f.Draft())
	assert.True(t, f.Notice().Empty())
	assert.False(t, f.Busy())
}

func TestForm_BlankContentStaysIdle(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t "} {
		f := NewForm()
		require.NoError(t, f.SetContent(content))
		require.NoError(t, f.SetActivities("Running"))

		_, err := f.Begin()

		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Equal(t, FormIdle, f.State(), "validation failure must not leave Idle")
		assert.Equal(t, NoticeValidation, f.Notice().Kind)
		assert.Equal(t, "Running", f.Draft().ActivitiesText, "draft is untouched")
	}
}

func TestForm_ValidationNoticeClearedOnEdit(t *testing.T) {
	f := NewForm()
	_, err := f.Begin()
	require.Error(t, err)

	require.NoError(t, f.SetContent("now something"))
	assert.True(t, f.Notice().Empty())
}

func TestForm_SuccessfulSubmit(t *testing.T) {
	f := NewForm()
	require.NoError(t, f.SetMood(4))
	require.NoError(t, f.SetActivities("Running, Coffee"))
	require.NoError(t, f.SetContent("Good day"))

	req, err := f.Begin()
	require.NoError(t, err)
	assert.Equal(t, FormSubmitting, f.State())
	assert.True(t, f.Busy())
	assert.Equal(t, NewEntry{Mood: 4, Activities: []string{"Running", "Coffee"}, Content: "Good day"}, req)

	require.NoError(t, f.Succeed())
	assert.Equal(t, FormSuccess, f.State())
	assert.Equal(t, Draft{Mood: 3}, f.Draft(), "draft resets to defaults")
	assert.Equal(t, Notice{Kind: NoticeSuccess, Text: SavedMessage}, f.Notice())

	require.NoError(t, f.Acknowledge())
	assert.Equal(t, FormIdle, f.State())
	assert.True(t, f.Notice().Empty())
}

func TestForm_FailedSubmitPreservesDraft(t *testing.T) {
	f := NewForm()
	require.NoError(t, f.SetMood(2))
	require.NoError(t, f.SetActivities("Work"))
	require.NoError(t, f.SetContent("Long day"))
	before := f.Draft()

	_, err := f.Begin()
	require.NoError(t, err)
	require.NoError(t, f.Fail("Mood is required"))

	assert.Equal(t, FormError, f.State())
	assert.Equal(t, before, f.Draft())
	assert.Equal(t, Notice{Kind: NoticeError, Text: "Mood is required"}, f.Notice())

	require.NoError(t, f.Acknowledge())
	assert.Equal(t, FormIdle, f.State())
	assert.Equal(t, before, f.Draft(), "draft survives acknowledging the error")
}

func TestForm_FailFallbackMessage(t *testing.T) {
	f := NewForm()
	require.NoError(t, f.SetContent("x"))
	_, err := f.Begin()
	require.NoError(t, err)

	require.NoError(t, f.Fail(""))
	assert.Equal(t, SaveFailedMessage, f.Notice().Text)
}

func TestForm_InvalidTransitions(t *testing.T) {
	f := NewForm()

	assert.ErrorIs(t, f.Succeed(), ErrInvalidTransition)
	assert.ErrorIs(t, f.Fail("x"), ErrInvalidTransition)
	assert.ErrorIs(t, f.Acknowledge(), ErrInvalidTransition)
	assert.Equal(t, FormIdle, f.State())

	require.NoError(t, f.SetContent("x"))
	_, err := f.Begin()
	require.NoError(t, err)

	_, err = f.Begin()
	assert.ErrorIs(t, err, ErrInvalidTransition, "double submit is rejected")
	assert.ErrorIs(t, f.Acknowledge(), ErrInvalidTransition)
	assert.ErrorIs(t, f.SetContent("changed"), ErrInvalidTransition)
	assert.ErrorIs(t, f.SetMood(5), ErrInvalidTransition)
	assert.ErrorIs(t, f.SetActivities("a"), ErrInvalidTransition)
	assert.Equal(t, "x", f.Draft().Content)
	assert.Equal(t, FormSubmitting, f.State())

	require.NoError(t, f.Succeed())
	_, err = f.Begin()
	assert.ErrorIs(t, err, ErrInvalidTransition, "submit waits for the notice to clear")
	assert.ErrorIs(t, f.Succeed(), ErrInvalidTransition)
}

func TestForm_EditingDuringNoticeIsAllowed(t *testing.T) {
	f := NewForm()
	require.NoError(t, f.SetContent("x"))
	_, err := f.Begin()
	require.NoError(t, err)
	require.NoError(t, f.Fail("boom"))

	require.NoError(t, f.SetContent("fixed"))
	assert.Equal(t, FormError, f.State())
	assert.Equal(t, "boom", f.Notice().Text, "only validation notices are cleared by edits")
}

func TestForm_SettleKeepsNoticeUntilEdit(t *testing.T) {
	f := NewForm()
	assert.ErrorIs(t, f.Settle(), ErrInvalidTransition)

	require.NoError(t, f.SetContent("x"))
	_, err := f.Begin()
	require.NoError(t, err)
	assert.ErrorIs(t, f.Settle(), ErrInvalidTransition)
	require.NoError(t, f.Fail("Server exploded"))

	require.NoError(t, f.Settle())
	assert.Equal(t, FormIdle, f.State())
	assert.Equal(t, Notice{Kind: NoticeError, Text: "Server exploded"}, f.Notice())
	assert.Equal(t, "x", f.Draft().Content)

	require.NoError(t, f.SetContent("x again"))
	assert.True(t, f.Notice().Empty())
}

func TestForm_SettledNoticeClearedBySubmit(t *testing.T) {
	f := NewForm()
	require.NoError(t, f.SetContent("x"))
	_, err := f.Begin()
	require.NoError(t, err)
	require.NoError(t, f.Succeed())
	require.NoError(t, f.Settle())
	assert.Equal(t, SavedMessage, f.Notice().Text)

	require.NoError(t, f.SetContent("y"))
	_, err = f.Begin()
	require.NoError(t, err)
	assert.True(t, f.Notice().Empty())
}

func TestForm_Dismiss(t *testing.T) {
	f := NewForm()
	require.NoError(t, f.SetContent("x"))
	_, err := f.Begin()
	require.NoError(t, err)

	f.Dismiss()
	assert.Equal(t, FormSubmitting, f.State(), "a request in flight is not dismissed")

	require.NoError(t, f.Fail("boom"))
	f.Dismiss()
	assert.Equal(t, FormIdle, f.State())
	assert.True(t, f.Notice().Empty())
}

func TestForm_SetMoodClamps(t *testing.T) {
	f := NewForm()
	require.NoError(t, f.SetMood(9))
	assert.Equal(t, 5, f.Draft().Mood)
	require.NoError(t, f.SetMood(-1))
	assert.Equal(t, 1, f.Draft().Mood)
}

func TestFormState_String(t *testing.T) {
	assert.Equal(t, "idle", FormIdle.String())
	assert.Equal(t, "submitting", FormSubmitting.String())
	assert.Equal(t, "success", FormSuccess.String())
	assert.Equal(t, "error", FormError.String())
	assert.Equal(t, "FormState(9)", FormState(9).String())
}
