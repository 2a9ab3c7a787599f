package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStylesRenderContent(t *testing.T) {
	assert.Contains(t, TitleStyle.Render("Extensions"), "Extensions")
	assert.Contains(t, NameStyle.Render("logging"), "logging")
	assert.Contains(t, WarningStyle.Render("ambiguous"), "ambiguous")
	assert.Contains(t, KeyStyle.Render("search_path"), "search_path")
}
