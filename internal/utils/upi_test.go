package utils

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUPIURI(t *testing.T) {
	uri := BuildUPIURI("shop@oksbi", "Chai Craft", "a1b2c3", 15050)

	require.True(t, strings.HasPrefix(uri, "upi://pay?"))

	parsed, err := url.Parse(uri)
	require.NoError(t, err)
	q := parsed.Query()

	assert.Equal(t, "shop@oksbi", q.Get("pa"))
	assert.Equal(t, "Chai Craft", q.Get("pn"))
	assert.Equal(t, "150.50", q.Get("am"), "paise render as rupees with two decimals")
	assert.Equal(t, "INR", q.Get("cu"))
	assert.Equal(t, "Order a1b2c3", q.Get("tn"))
}

func TestBuildUPIURIWholeRupees(t *testing.T) {
	uri := BuildUPIURI("shop@oksbi", "Chai Craft", "ref", 2000)
	parsed, err := url.Parse(uri)
	require.NoError(t, err)
	assert.Equal(t, "20.00", parsed.Query().Get("am"))
}
