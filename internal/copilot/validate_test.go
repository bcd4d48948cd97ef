package copilot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload(action Action) map[string]any {
	switch action {
	case ActionCreation:
		return map[string]any{
			"idea":     "30-day workout challenge",
			"tone":     "Motivational",
			"platform": "Instagram",
			"niche":    "Fitness",
		}
	case ActionOptimization:
		return map[string]any{
			"content":  "Here is my draft caption about morning routines.",
			"platform": "Instagram",
		}
	default: // ideation, planning, profile share the profile quad
		return map[string]any{
			"niche":      "Fitness",
			"platform":   "Instagram",
			"experience": "Beginner",
			"goal":       "Grow followers",
		}
	}
}

func TestValidateAllActions(t *testing.T) {
	for _, action := range []Action{
		ActionIdeation, ActionCreation, ActionOptimization, ActionPlanning, ActionProfile,
	} {
		t.Run(string(action), func(t *testing.T) {
			req, err := Validate(string(action), validPayload(action))
			require.NoError(t, err)
			assert.Equal(t, action, req.Action)
		})
	}
}

func TestValidateUnknownAction(t *testing.T) {
	_, err := Validate("ideaton", validPayload(ActionIdeation))

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, ReasonUnknownAction, vErr.Reason)
}

func TestValidateMissingRequiredField(t *testing.T) {
	for _, action := range []Action{
		ActionIdeation, ActionCreation, ActionOptimization, ActionPlanning, ActionProfile,
	} {
		for name := range validPayload(action) {
			t.Run(string(action)+"/"+name, func(t *testing.T) {
				payload := validPayload(action)
				delete(payload, name)

				_, err := Validate(string(action), payload)

				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, ReasonMissingField, vErr.Reason)
				assert.Equal(t, name, vErr.Field)
			})
		}
	}
}

func TestValidateWhitespaceOnlyRequiredField(t *testing.T) {
	payload := validPayload(ActionProfile)
	payload["niche"] = "   \t\n "

	_, err := Validate(string(ActionProfile), payload)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, ReasonMissingField, vErr.Reason)
}

func TestValidateFieldTooLong(t *testing.T) {
	payload := validPayload(ActionIdeation)
	payload["niche"] = strings.Repeat("x", 101)

	_, err := Validate(string(ActionIdeation), payload)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, ReasonFieldTooLong, vErr.Reason)
	assert.Equal(t, "niche", vErr.Field)
}

// Bounds count characters, not bytes: multibyte input within the character
// bound must pass even though it is several times the bound in bytes.
func TestValidateBoundsCountCharacters(t *testing.T) {
	payload := validPayload(ActionProfile)

	payload["niche"] = strings.Repeat("筋", 100)
	_, err := Validate(string(ActionProfile), payload)
	require.NoError(t, err)

	payload["niche"] = strings.Repeat("筋", 101)
	_, err = Validate(string(ActionProfile), payload)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, ReasonFieldTooLong, vErr.Reason)
	assert.Equal(t, "niche", vErr.Field)
}

func TestValidateContentAtBound(t *testing.T) {
	payload := validPayload(ActionOptimization)

	payload["content"] = strings.Repeat("a", 5000)
	_, err := Validate(string(ActionOptimization), payload)
	require.NoError(t, err)

	payload["content"] = strings.Repeat("a", 5001)
	_, err = Validate(string(ActionOptimization), payload)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, ReasonFieldTooLong, vErr.Reason)
	assert.Equal(t, "content", vErr.Field)

	payload["content"] = strings.Repeat("あ", 5000)
	_, err = Validate(string(ActionOptimization), payload)
	require.NoError(t, err)
}

func TestValidateNonStringField(t *testing.T) {
	payload := validPayload(ActionProfile)
	payload["goal"] = 42

	_, err := Validate(string(ActionProfile), payload)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, ReasonNotAString, vErr.Reason)
}

func TestValidateIgnoresUndeclaredFields(t *testing.T) {
	payload := validPayload(ActionProfile)
	payload["unexpected"] = map[string]any{"nested": true}

	req, err := Validate(string(ActionProfile), payload)
	require.NoError(t, err)
	_, kept := req.Fields["unexpected"]
	assert.False(t, kept)
}

func TestValidateOptionalFields(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		req, err := Validate(string(ActionIdeation), validPayload(ActionIdeation))
		require.NoError(t, err)
		_, ok := req.Fields["topic"]
		assert.False(t, ok)
	})

	t.Run("empty treated as absent", func(t *testing.T) {
		payload := validPayload(ActionIdeation)
		payload["topic"] = "  "
		req, err := Validate(string(ActionIdeation), payload)
		require.NoError(t, err)
		_, ok := req.Fields["topic"]
		assert.False(t, ok)
	})

	t.Run("present and trimmed", func(t *testing.T) {
		payload := validPayload(ActionIdeation)
		payload["topic"] = "  home workouts "
		req, err := Validate(string(ActionIdeation), payload)
		require.NoError(t, err)
		assert.Equal(t, "home workouts", req.Fields["topic"])
	})

	t.Run("over bound", func(t *testing.T) {
		payload := validPayload(ActionIdeation)
		payload["topic"] = strings.Repeat("x", 501)
		_, err := Validate(string(ActionIdeation), payload)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, ReasonFieldTooLong, vErr.Reason)
	})
}
