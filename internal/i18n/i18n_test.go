package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alertlink/internal/i18n"
	"github.com/alertlink/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want model.Locale
	}{
		{"en", model.LocaleEN},
		{"sq", model.LocaleSQ},
		{"al", model.LocaleSQ},
		{"AL", model.LocaleSQ},
		{" en ", model.LocaleEN},
		{"de", model.LocaleEN},
		{"", model.LocaleEN},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, i18n.Normalize(tt.raw), "raw=%q", tt.raw)
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, i18n.Supported("en"))
	assert.True(t, i18n.Supported("sq"))
	assert.True(t, i18n.Supported("al"))
	assert.False(t, i18n.Supported("de"))
	assert.False(t, i18n.Supported(""))
}

func TestTranslator(t *testing.T) {
	t.Run("LocalizedLookup", func(t *testing.T) {
		en := i18n.Resolve("en")
		sq := i18n.Resolve("sq")
		assert.Equal(t, "Hello", en.T("greeting"))
		assert.Equal(t, "Përshëndetje", sq.T("greeting"))
	})

	t.Run("PlaceholderSubstitution", func(t *testing.T) {
		en := i18n.Resolve("en")
		got := en.T("welcomeRole", map[string]string{"role": "Administrator"})
		assert.Equal(t, "Welcome! You are logged in as Administrator.", got)
	})

	t.Run("MissingKeyFallsBackToKey", func(t *testing.T) {
		sq := i18n.Resolve("sq")
		assert.Equal(t, "noSuchKey", sq.T("noSuchKey"))
	})

	t.Run("AliasLocale", func(t *testing.T) {
		al := i18n.Resolve("al")
		assert.Equal(t, model.LocaleSQ, al.Locale())
		assert.Equal(t, "Përshëndetje", al.T("greeting"))
	})

	t.Run("UnknownLocaleUsesDefault", func(t *testing.T) {
		de := i18n.Resolve("de")
		assert.Equal(t, i18n.DefaultLocale, de.Locale())
		assert.Equal(t, "Hello", de.T("greeting"))
	})
}

func TestRoleKey(t *testing.T) {
	assert.Equal(t, "roleAdmin", i18n.RoleKey(model.RoleAdmin))
	assert.Equal(t, "roleResponder", i18n.RoleKey(model.RoleResponder))
	assert.Equal(t, "roleObserver", i18n.RoleKey(model.RoleObserver))
}
