package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBundleIsComplete(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateFlagsMissingKeys(t *testing.T) {
	b := &Bundle{tables: map[Lang]map[string]string{
		LangEnglish: {"greeting": "hello", "farewell": "bye"},
		LangHindi:   {"greeting": "नमस्ते"},
	}}

	err := b.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hi/farewell")
}

func TestLookupFallsBackToEnglish(t *testing.T) {
	b := Default()

	assert.Equal(t, "Select District", b.T("fr", KeySelectDistrict))
	assert.Equal(t, "someUnknownKey", b.T(LangEnglish, "someUnknownKey"))
}

func TestFormattedMessagesRespectArgumentOrder(t *testing.T) {
	b := Default()

	en := b.Tf(LangEnglish, KeyErrDistrictNotFound, "Mandya", "Karnataka")
	assert.Equal(t, `District "Mandya" not found in Karnataka. Please select manually.`, en)

	// Hindi places the state before the district; indexed verbs keep the
	// arguments straight.
	hi := b.Tf(LangHindi, KeyErrDistrictNotFound, "Mandya", "Karnataka")
	assert.Contains(t, hi, `"Mandya"`)
	assert.Contains(t, hi, "Karnataka")
	assert.False(t, strings.Contains(hi, "%!"), "no printf artifacts")
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, LangHindi, Normalize("hi"))
	assert.Equal(t, LangKannada, Normalize("kn"))
	assert.Equal(t, LangEnglish, Normalize("en"))
	assert.Equal(t, LangEnglish, Normalize("zz"))
	assert.Equal(t, LangEnglish, Normalize(""))
}
