package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSubjectName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain name", "Jordan Lee\nSoftware Engineer\njordan@example.com", "Jordan Lee"},
		{"leading blank lines", "\n\n  Amara Okafor  \nProduct Designer", "Amara Okafor"},
		{"email first line", "jordan@example.com\nJordan Lee", ""},
		{"url first line", "https://example.com/jordan\nJordan Lee", ""},
		{"www first line", "www.jordanlee.dev\nJordan Lee", ""},
		{"resume heading", "Resume\nJordan Lee", ""},
		{"cv heading", "CV: Jordan Lee", ""},
		{"curriculum heading", "Curriculum Vitae\nJordan Lee", ""},
		{"too long", strings.Repeat("a", 60) + "\nJordan Lee", ""},
		{"just under limit", strings.Repeat("a", 59), strings.Repeat("a", 59)},
		{"empty text", "   \n\t\n", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveSubjectName(tc.text))
		})
	}
}

func TestBuildQueryWithName(t *testing.T) {
	got := BuildQuery("Jordan Lee\nSoftware Engineer", "Jordan Lee")
	assert.Equal(t, "Jordan Lee professional background work experience", got)
}

func TestBuildQueryFallback(t *testing.T) {
	text := "Objective\nSeasoned engineer with a decade of experience."
	got := BuildQuery(text, "")
	assert.True(t, strings.HasPrefix(got, "professional background "))
	assert.Contains(t, got, "Seasoned engineer")
}

func TestBuildQueryFallbackBoundsLength(t *testing.T) {
	long := strings.Repeat("word ", 200)
	got := BuildQuery(long, "")
	assert.LessOrEqual(t, len([]rune(got)), len(fallbackQueryPrefix)+fallbackQueryChars)
}

func TestBuildQueryDeterministic(t *testing.T) {
	text := "Jordan Lee\nSoftware Engineer at Example Corp"
	name := DeriveSubjectName(text)
	first := BuildQuery(text, name)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildQuery(text, name))
	}
}

func TestTruncateForStorage(t *testing.T) {
	assert.Equal(t, "abc", TruncateForStorage("abc", 10))
	assert.Equal(t, "ab", TruncateForStorage("abcd", 2))
	assert.Equal(t, "abcd", TruncateForStorage("abcd", 0))
}
