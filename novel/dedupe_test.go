package novel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(n int, body string) Chapter {
	return Chapter{Number: n, Numbered: true, Title: CanonicalTitle(n, ""), Body: body}
}

func TestFingerprint(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want string
	}{
		{"Han", "他走了过来，说道", "他走了过来"},
		{"SkipsPunctuation", "“你——好！”世界和平", "你好世界和"},
		{"AsciiAlnum", "a-b c_1 2 3", "abc12"},
		{"Short", "嗯。", "嗯"},
		{"Empty", "……！？", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Fingerprint(tc.body))
		})
	}
}

func TestDedupe_SameFingerprintCollapses(t *testing.T) {
	chapters := []Chapter{
		numbered(3, "天色已晚，他回到家中。"),
		numbered(3, "天色已晚。他回到了村子"),
	}

	out := Dedupe(chapters)

	require.Len(t, out, 1)
	assert.Equal(t, "天色已晚，他回到家中。", out[0].Body)
}

func TestDedupe_DifferentFingerprintsSurvive(t *testing.T) {
	chapters := []Chapter{
		numbered(3, "天色已晚"),
		numbered(3, "本站最新网址"),
		numbered(3, "天色已晚"),
	}

	out := Dedupe(chapters)

	require.Len(t, out, 2)
	assert.Equal(t, "天色已晚", out[0].Body)
	assert.Equal(t, "本站最新网址", out[1].Body)
}

func TestDedupe_ComparesAgainstAllKept(t *testing.T) {
	chapters := []Chapter{
		numbered(7, "甲乙丙丁戊"),
		numbered(7, "子丑寅卯辰"),
		numbered(7, "子丑寅卯辰巳"),
	}

	out := Dedupe(chapters)

	require.Len(t, out, 2)
	assert.Equal(t, "子丑寅卯辰", out[1].Body)
}

func TestDedupe_EmptyFingerprintNeverMatches(t *testing.T) {
	chapters := []Chapter{
		numbered(1, "……"),
		numbered(1, "！！"),
		numbered(1, "？"),
	}

	assert.Len(t, Dedupe(chapters), 3)
}

func TestDedupe_Ordering(t *testing.T) {
	loose := Chapter{Title: "第99999999999999999999章", Body: "甲"}
	chapters := []Chapter{
		numbered(5, "五"),
		loose,
		numbered(2, "二"),
		numbered(9, "九"),
		numbered(2, "二又"),
		numbered(1, "一"),
	}

	out := Dedupe(chapters)

	require.Len(t, out, 6)
	var last int
	for _, c := range out[:5] {
		require.True(t, c.Numbered)
		assert.GreaterOrEqual(t, c.Number, last)
		last = c.Number
	}
	assert.Equal(t, "二", out[1].Body)
	assert.Equal(t, "二又", out[2].Body)
	assert.Equal(t, loose, out[5])
}

func TestDedupe_DuplicatedChapterEndToEnd(t *testing.T) {
	text := "第一章\n起\n第二章\n承\n第三章 转\n风起云涌，大战将至。\n第三章 转（重复）\n风起云涌大战将至……\n第四章\n合"

	out := Dedupe(Segment(split(text)))

	var threes int
	for i, c := range out {
		assert.Equal(t, i+1, c.Number)
		if c.Number == 3 {
			threes++
			assert.Equal(t, "第3章 转", c.Title)
		}
	}
	assert.Equal(t, 1, threes)
	assert.Len(t, out, 4)
}
