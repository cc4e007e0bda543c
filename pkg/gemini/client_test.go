package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient(context.Background(), "test-key")
	require.NoError(t, err)
	sc := c.(*sdkClient)
	assert.Equal(t, defaultModel, sc.model)
	assert.Nil(t, sc.limiter)
}

func TestWithModel(t *testing.T) {
	c, err := NewClient(context.Background(), "test-key", WithModel("gemini-2.5-pro"))
	require.NoError(t, err)
	sc := c.(*sdkClient)
	assert.Equal(t, "gemini-2.5-pro", sc.model)
}

func TestWithRateLimit(t *testing.T) {
	c, err := NewClient(context.Background(), "test-key", WithRateLimit(30))
	require.NoError(t, err)
	sc := c.(*sdkClient)
	require.NotNil(t, sc.limiter)

	// Zero disables the limiter.
	c, err = NewClient(context.Background(), "test-key", WithRateLimit(0))
	require.NoError(t, err)
	assert.Nil(t, c.(*sdkClient).limiter)
}

func TestToSDKSchema(t *testing.T) {
	s := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"prize1":     {Type: TypeString, Description: "six digit first prize"},
			"front3":     {Type: TypeArray, Items: &Schema{Type: TypeString}},
			"confidence": {Type: TypeNumber},
		},
		Required: []string{"prize1", "front3"},
	}

	got := toSDKSchema(s)
	require.NotNil(t, got)
	assert.Equal(t, genai.TypeObject, got.Type)
	assert.Equal(t, []string{"prize1", "front3"}, got.Required)

	require.Contains(t, got.Properties, "prize1")
	assert.Equal(t, genai.TypeString, got.Properties["prize1"].Type)
	assert.Equal(t, "six digit first prize", got.Properties["prize1"].Description)

	require.Contains(t, got.Properties, "front3")
	assert.Equal(t, genai.TypeArray, got.Properties["front3"].Type)
	require.NotNil(t, got.Properties["front3"].Items)
	assert.Equal(t, genai.TypeString, got.Properties["front3"].Items.Type)

	assert.Equal(t, genai.TypeNumber, got.Properties["confidence"].Type)
}

func TestToSDKSchemaNil(t *testing.T) {
	assert.Nil(t, toSDKSchema(nil))
}
