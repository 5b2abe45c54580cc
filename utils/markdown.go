package utils

import (
	"errors"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/russross/blackfriday"
)

var ErrEmptyContent = errors.New("内容不能为空")

// ConvertMarkdownToHTML 将 Markdown 正文转换为 HTML 并移除脚本标签
func ConvertMarkdownToHTML(content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}

	unsafe := blackfriday.MarkdownCommon([]byte(content))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(unsafe)))
	if err != nil {
		return "", err
	}

	// 移除所有脚本标签以提高安全性
	doc.Find("script").Remove()

	html, err := doc.Html()
	if err != nil {
		return "", err
	}

	return html, nil
}

// ConvertHTMLToMarkdown 将富文本编辑器产出的 HTML 转换为 Markdown 存储
func ConvertHTMLToMarkdown(htmlContent string) (string, error) {
	if strings.TrimSpace(htmlContent) == "" {
		return "", ErrEmptyContent
	}

	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(htmlContent)
	if err != nil {
		return "", err
	}

	return markdown, nil
}
