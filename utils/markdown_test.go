package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMarkdownToHTMLStripsScript(t *testing.T) {
	html, err := ConvertMarkdownToHTML("# 标题\n\n正文<script>alert(1)</script>")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>")
	assert.Contains(t, html, "正文")
	assert.NotContains(t, html, "<script>")
}

func TestConvertMarkdownToHTMLEmpty(t *testing.T) {
	_, err := ConvertMarkdownToHTML("   ")
	require.ErrorIs(t, err, ErrEmptyContent)
}

func TestConvertHTMLToMarkdown(t *testing.T) {
	markdown, err := ConvertHTMLToMarkdown("<h2>小节</h2><p>这是<strong>重点</strong></p>")
	require.NoError(t, err)
	assert.Contains(t, markdown, "## 小节")
	assert.Contains(t, markdown, "**重点**")
}
