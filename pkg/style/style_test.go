package style_test

import (
	"testing"

	"github.com/arthur-debert/linkdot/pkg/style"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestBadgePadsBeforeStyling(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	assert.Equal(t, "TODO   ", style.Badge("TODO", 7))
	assert.Equal(t, "SUCCESS", style.Badge("SUCCESS", 7))
}

func TestStatusStyle(t *testing.T) {
	for _, status := range []string{"TODO", "ALIEN", "LINKED", "SUCCESS", "SKIPPED", "EXISTED", "ERROR", "other"} {
		assert.NotNil(t, style.StatusStyle(status), status)
	}
	assert.Equal(t, style.StatusStyle("LINKED"), style.StatusStyle("SUCCESS"))
}

func TestGetStyle(t *testing.T) {
	assert.Equal(t, style.ErrorStyle.Render("x"), style.GetStyle("Error").Render("x"))
	assert.Equal(t, "x", style.GetStyle("Nope").Render("x"))
}
