package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalesHaveSameKeys(t *testing.T) {
	assert.Equal(t, Keys(LocaleID), Keys(LocaleEN))
}

func TestCatalogFormatsAndFallsBack(t *testing.T) {
	c := New(LocaleID)
	assert.Equal(t, "Terjadi kesalahan HTTP! Status: 503", c.T(PredictHTTPStatus, 503))
	assert.Equal(t, "Gagal mengambil distribusi target", c.T(DashboardTargetFailed))
	assert.Equal(t, "missing.key", c.T("missing.key"))

	unknown := New("fr")
	assert.Equal(t, LocaleID, unknown.Locale())

	assert.Equal(t, "HTTP error! Status: 404", New(LocaleEN).T(PredictHTTPStatus, 404))
}
