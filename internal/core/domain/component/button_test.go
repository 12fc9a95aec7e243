package component

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slashkit/internal/core/domain"
)

func TestNewButtonValidation(t *testing.T) {
	type TestCase struct {
		description string
		params      ButtonParams
		wantErr     bool
	}

	testCases := []TestCase{
		{
			description: "label alone is enough",
			params:      ButtonParams{Label: "click me"},
		},
		{
			description: "emoji alone is enough",
			params:      ButtonParams{Emoji: domain.UnicodeEmoji("🔥")},
		},
		{
			description: "no label and no emoji fails",
			params:      ButtonParams{Style: ButtonStylePrimary},
			wantErr:     true,
		},
		{
			description: "link button with url succeeds",
			params:      ButtonParams{Style: ButtonStyleLink, Label: "docs", URL: "https://example.com"},
		},
		{
			description: "link button with custom id fails",
			params:      ButtonParams{Style: ButtonStyleLink, Label: "docs", URL: "https://example.com", CustomID: "abc"},
			wantErr:     true,
		},
		{
			description: "link button without url fails",
			params:      ButtonParams{Style: ButtonStyleLink, Label: "docs"},
			wantErr:     true,
		},
		{
			description: "non-link button with url fails",
			params:      ButtonParams{Style: ButtonStylePrimary, Label: "docs", URL: "https://example.com"},
			wantErr:     true,
		},
		{
			description: "style out of range fails",
			params:      ButtonParams{Style: 9, Label: "click me"},
			wantErr:     true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			_, err := NewButton(testCase.params)

			if testCase.wantErr {
				var validation *domain.ValidationError
				require.ErrorAs(t, err, &validation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewButtonDefaultsToSecondary(t *testing.T) {
	button, err := NewButton(ButtonParams{Label: "click me"})
	require.NoError(t, err)

	assert.Equal(t, ButtonStyleSecondary, button.Style())
}

func TestNewButtonGeneratesCustomID(t *testing.T) {
	button, err := NewButton(ButtonParams{Label: "click me"})
	require.NoError(t, err)

	assert.NotEmpty(t, button.CustomID())
}

func TestNewButtonKeepsProvidedCustomID(t *testing.T) {
	button, err := NewButton(ButtonParams{Label: "click me", CustomID: "confirm"})
	require.NoError(t, err)

	assert.Equal(t, "confirm", button.CustomID())
}

func TestLinkButtonHasNoCustomID(t *testing.T) {
	button, err := NewButton(ButtonParams{Style: ButtonStyleLink, Label: "docs", URL: "https://example.com"})
	require.NoError(t, err)

	assert.Empty(t, button.CustomID())
	assert.Equal(t, "https://example.com", button.URL())
}

func TestButtonColorAliases(t *testing.T) {
	assert.Equal(t, ButtonStylePrimary, ButtonStyleBlue)
	assert.Equal(t, ButtonStyleSecondary, ButtonStyleGray)
	assert.Equal(t, ButtonStyleGray, ButtonStyleGrey)
	assert.Equal(t, ButtonStyleSuccess, ButtonStyleGreen)
	assert.Equal(t, ButtonStyleDanger, ButtonStyleRed)
	assert.Equal(t, ButtonStyleLink, ButtonStyleURL)
}

func TestButtonWireShape(t *testing.T) {
	button, err := NewButton(ButtonParams{
		Style:    ButtonStylePrimary,
		Label:    "confirm",
		CustomID: "confirm-1",
	})
	require.NoError(t, err)

	data, err := json.Marshal(button)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": 2,
		"style": 1,
		"label": "confirm",
		"custom_id": "confirm-1",
		"url": null,
		"disabled": false
	}`, string(data))
}

func TestLinkButtonWireShape(t *testing.T) {
	button, err := NewButton(ButtonParams{Style: ButtonStyleLink, Label: "docs", URL: "https://example.com"})
	require.NoError(t, err)

	data, err := json.Marshal(button)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": 2,
		"style": 5,
		"label": "docs",
		"custom_id": null,
		"url": "https://example.com",
		"disabled": false
	}`, string(data))
}

func TestButtonEmojiWireShape(t *testing.T) {
	button, err := NewButton(ButtonParams{
		Style:    ButtonStylePrimary,
		Emoji:    domain.CustomEmoji("pepe", 123, false),
		CustomID: "pepe-1",
	})
	require.NoError(t, err)

	data, err := json.Marshal(button)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": 2,
		"style": 1,
		"label": null,
		"custom_id": "pepe-1",
		"url": null,
		"disabled": false,
		"emoji": {"name": "pepe", "id": 123, "animated": false}
	}`, string(data))
}

func TestButtonRoundTrip(t *testing.T) {
	type TestCase struct {
		description string
		params      ButtonParams
	}

	testCases := []TestCase{
		{
			description: "plain button",
			params:      ButtonParams{Style: ButtonStyleSuccess, Label: "go", CustomID: "go-1"},
		},
		{
			description: "unicode emoji button",
			params:      ButtonParams{Style: ButtonStylePrimary, Emoji: domain.UnicodeEmoji("🔥"), CustomID: "fire"},
		},
		{
			description: "custom emoji button",
			params: ButtonParams{
				Style:    ButtonStyleDanger,
				Label:    "delete",
				Emoji:    domain.CustomEmoji("trash", 987, false),
				CustomID: "delete-1",
				Disabled: true,
			},
		},
		{
			description: "link button",
			params:      ButtonParams{Style: ButtonStyleLink, Label: "docs", URL: "https://example.com"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			button, err := NewButton(testCase.params)
			require.NoError(t, err)

			data, err := json.Marshal(button)
			require.NoError(t, err)

			decoded := &Button{}
			require.NoError(t, json.Unmarshal(data, decoded))

			assert.Equal(t, button, decoded)
		})
	}
}

func TestButtonSetters(t *testing.T) {
	button, err := NewButton(ButtonParams{Label: "click me", CustomID: "abc"})
	require.NoError(t, err)

	require.NoError(t, button.SetLabel("press me"))
	assert.Equal(t, "press me", button.Label())

	require.NoError(t, button.SetStyle(ButtonStyleDanger))
	assert.Equal(t, ButtonStyleDanger, button.Style())

	require.NoError(t, button.SetEmoji(domain.UnicodeEmoji("🔥")))
	assert.Equal(t, "🔥", button.Emoji().Name)

	require.NoError(t, button.SetCustomID("def"))
	assert.Equal(t, "def", button.CustomID())

	button.SetDisabled(true)
	assert.True(t, button.Disabled())
}

func TestButtonSetterViolationsLeaveButtonUnchanged(t *testing.T) {
	button, err := NewButton(ButtonParams{Label: "click me", CustomID: "abc"})
	require.NoError(t, err)

	var validation *domain.ValidationError

	require.ErrorAs(t, button.SetStyle(ButtonStyleLink), &validation)
	assert.Equal(t, ButtonStyleSecondary, button.Style())

	require.ErrorAs(t, button.SetLabel(""), &validation)
	assert.Equal(t, "click me", button.Label())

	require.ErrorAs(t, button.SetURL("https://example.com"), &validation)
	assert.Empty(t, button.URL())
}

func TestLinkButtonRejectsCustomID(t *testing.T) {
	button, err := NewButton(ButtonParams{Style: ButtonStyleLink, Label: "docs", URL: "https://example.com"})
	require.NoError(t, err)

	var validation *domain.ValidationError
	require.ErrorAs(t, button.SetCustomID("abc"), &validation)
	assert.Empty(t, button.CustomID())
}

func TestButtonUnmarshalRejectsLinkWithCustomID(t *testing.T) {
	payload := `{"type":2,"style":5,"label":"docs","custom_id":"abc","url":"https://example.com","disabled":false}`

	var validation *domain.ValidationError
	require.ErrorAs(t, json.Unmarshal([]byte(payload), &Button{}), &validation)
}

func TestButtonUnmarshalGeneratesMissingCustomID(t *testing.T) {
	payload := `{"type":2,"style":1,"label":"go","custom_id":null,"url":null,"disabled":false}`

	button := &Button{}
	require.NoError(t, json.Unmarshal([]byte(payload), button))

	assert.NotEmpty(t, button.CustomID())
}

func TestButtonUnmarshalRejectsNamelessEmoji(t *testing.T) {
	payload := `{"type":2,"style":1,"label":"go","custom_id":"go-1","url":null,"disabled":false,"emoji":{"id":123}}`

	var validation *domain.ValidationError
	require.ErrorAs(t, json.Unmarshal([]byte(payload), &Button{}), &validation)
}
