package novel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func split(text string) []string {
	return strings.Split(text, "\n")
}

func TestSegment_ChineseHeadings(t *testing.T) {
	chapters := Segment(split("第一章 开始\n你好\n\n第二章\n世界"))

	require.Len(t, chapters, 2)
	assert.Equal(t, Chapter{Number: 1, Numbered: true, Suffix: "开始", Title: "第1章 开始", Body: "你好"}, chapters[0])
	assert.Equal(t, Chapter{Number: 2, Numbered: true, Title: "第2章", Body: "世界"}, chapters[1])
	assert.Equal(t, 4, CollectStats(chapters).TotalWords)
}

func TestSegment_DropsPreamble(t *testing.T) {
	chapters := Segment(split("intro text\n第1章\n正文"))

	require.Len(t, chapters, 1)
	assert.Equal(t, Chapter{Number: 1, Numbered: true, Title: "第1章", Body: "正文"}, chapters[0])
}

func TestSegment_EmptyBody(t *testing.T) {
	chapters := Segment(split("第一章\n\n   \n第二章 尾声"))

	require.Len(t, chapters, 2)
	assert.Equal(t, EmptyBody, chapters[0].Body)
	assert.Equal(t, EmptyBody, chapters[1].Body)
}

func TestSegment_BodyKeepsInnerLines(t *testing.T) {
	chapters := Segment(split("第三章 雨\n\n　　第一段\n\n　　第二段\n"))

	require.Len(t, chapters, 1)
	assert.Equal(t, "第一段\n\n　　第二段", chapters[0].Body)
	assert.Equal(t, []string{"第一段", "", "　　第二段"}, chapters[0].Lines())
}

func TestSegment_HeadingVariants(t *testing.T) {
	testCases := []struct {
		name  string
		line  string
		title string
		ok    bool
	}{
		{"Indented", "　　第十章 归来", "第10章 归来", true},
		{"IdeographicSpace", "第十一章　夜", "第11章 夜", true},
		{"Fullwidth", "第１２章", "第12章", true},
		{"MixedDigitAndUnit", "第1百章", "第100章", true},
		{"SuffixWithoutSpace", "第一章开始", "第1章 开始", true},
		{"FullwidthColonSuffix", "第二章：承", "第2章 ：承", true},
		{"Sentence", "这是第一章的内容", "", false},
		{"OtherUnit", "第一节", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, IsHeading(tc.line))
			chapters := Segment([]string{tc.line, "正文"})
			if !tc.ok {
				assert.Empty(t, chapters)
				return
			}
			require.Len(t, chapters, 1)
			assert.Equal(t, tc.title, chapters[0].Title)
		})
	}
}

func TestSegment_HeadingsWithoutSeparator(t *testing.T) {
	chapters := Segment(split("第一章 起\n甲\n第二章：承\n乙\n第三章转\n丙"))

	require.Len(t, chapters, 3)
	assert.Equal(t, Chapter{Number: 1, Numbered: true, Suffix: "起", Title: "第1章 起", Body: "甲"}, chapters[0])
	assert.Equal(t, Chapter{Number: 2, Numbered: true, Suffix: "：承", Title: "第2章 ：承", Body: "乙"}, chapters[1])
	assert.Equal(t, Chapter{Number: 3, Numbered: true, Suffix: "转", Title: "第3章 转", Body: "丙"}, chapters[2])
}

func TestSegment_UnparseableNumeralKeepsRawHeading(t *testing.T) {
	line := "第99999999999999999999999章 太长"
	chapters := Segment([]string{line, "正文"})

	require.Len(t, chapters, 1)
	assert.False(t, chapters[0].Numbered)
	assert.Equal(t, line, chapters[0].Title)
	assert.Equal(t, "正文", chapters[0].Body)
}

func TestSegment_NoHeading(t *testing.T) {
	assert.Empty(t, Segment(split("just\nsome\ntext")))
	assert.False(t, ContainsHeading(split("just\nsome\ntext")))
}

func TestSegment_RoundTrip(t *testing.T) {
	text := "序\n第一章 开始\n你好\n第三章\n\n第二章 中\n世界\n第二章 中\n世界重复\n第99999999999999999999999章\n残"
	first := Dedupe(Segment(split(text)))
	second := Segment(Serialize(first))

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Title, second[i].Title)
		assert.Equal(t, first[i].Body, second[i].Body)
	}
}
