package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
)

func TestRender(t *testing.T) {
	s := domain.Summarize([]domain.Asset{
		{SerialNumber: "A", Category: "LAPTOP", Status: "IN USE", Location: "HQ", Assignee: "ANA"},
		{SerialNumber: "B", Category: "MONITOR", Status: "RETIRED", Location: "LAB", Assignee: domain.Unassigned},
	})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "Inventory", s))

	html := buf.String()
	assert.True(t, strings.Contains(html, "<html") || strings.Contains(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "Inventory")
	assert.Contains(t, html, "LAPTOP")
	assert.Contains(t, html, "RETIRED")
	assert.Contains(t, html, "echarts")
}

func TestRender_EmptySummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "Empty", domain.Summarize(nil)))
	assert.NotZero(t, buf.Len())
}
