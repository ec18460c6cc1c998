package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandingDefaultsWhenFileMissing(t *testing.T) {
	holder, err := NewBrandingHolder(Config{BrandingDir: t.TempDir()})
	require.NoError(t, err)

	b := holder.Get()
	assert.Equal(t, "Generated with QuickDocs", b.FooterText)
	assert.Equal(t, "Your Company", b.DefaultCompanyName)
	assert.Equal(t, "Estimate", b.DefaultProjectTitle)
}

func TestBrandingFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`branding:
  footerText: "Powered by Acme"
  defaultCompanyName: "Acme Inc"
  defaultProjectTitle: "Proposal"
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "branding.yml"), content, 0o644))

	holder, err := NewBrandingHolder(Config{BrandingDir: dir})
	require.NoError(t, err)

	b := holder.Get()
	assert.Equal(t, "Powered by Acme", b.FooterText)
	assert.Equal(t, "Acme Inc", b.DefaultCompanyName)
	assert.Equal(t, "Proposal", b.DefaultProjectTitle)
}

func TestBrandingRejectsEmptyFooter(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`branding:
  footerText: ""
  defaultCompanyName: "Acme Inc"
  defaultProjectTitle: "Proposal"
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "branding.yml"), content, 0o644))

	_, err := NewBrandingHolder(Config{BrandingDir: dir})
	assert.Error(t, err)
}
