package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParagraphs(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want string
	}{
		{"Single", "你好", "<p>你好</p>"},
		{"SkipsBlankLines", "　　一\n\n  \n二", "<p>一</p>\n<p>二</p>"},
		{"Escapes", "a < b & \"c\"", "<p>a &lt; b &amp; &#34;c&#34;</p>"},
		{"Empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Paragraphs(tc.body))
		})
	}
}

func TestParagraphs_ParsesBack(t *testing.T) {
	body := "第一段\n\n<script>alert(1)</script>\n第三段"

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(Paragraphs(body)))
	require.NoError(t, err)

	var texts []string
	doc.Find("p").Each(func(i int, s *goquery.Selection) {
		texts = append(texts, s.Text())
	})
	assert.Equal(t, []string{"第一段", "<script>alert(1)</script>", "第三段"}, texts)
	assert.Equal(t, 0, doc.Find("script").Length())
}

func TestMarkdown(t *testing.T) {
	md, err := Markdown("甲\n乙")
	require.NoError(t, err)
	assert.Contains(t, md, "甲")
	assert.Contains(t, md, "乙")
	assert.NotContains(t, md, "<p>")
}
