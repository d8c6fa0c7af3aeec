package domain

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		ok    bool
	}{
		{"friends", CategoryFriends, true},
		{"COUPLE", CategoryCouple, true},
		{" couple ", CategoryCouple, true},
		{"family", Category("family"), false},
		{"", Category(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseCategory(tt.input)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCategoryRules(t *testing.T) {
	assert.Equal(t, 15, CategoryFriends.MaxUsers())
	assert.Equal(t, 2, CategoryCouple.MaxUsers())
	assert.True(t, CategoryFriends.AllowsAnonymous())
	assert.False(t, CategoryCouple.AllowsAnonymous())

	assert.Equal(t, "#9EC6F3", CategoryFriends.BorderPalette().Default)
	assert.Equal(t, "#FBFBFB", CategoryFriends.BackgroundPalette().Default)
	assert.Equal(t, "#FF9292", CategoryCouple.BorderPalette().Default)
	assert.Equal(t, "#FFE8E8", CategoryCouple.BackgroundPalette().Default)
}

func TestPalette_SnapKeepsValidColorsCaseInsensitive(t *testing.T) {
	p := CategoryFriends.NotePalette()
	assert.Equal(t, "#A8D8EA", p.Snap("#A8D8EA"))
	assert.Equal(t, "#AA96DA", p.Snap("#aa96da"))
	assert.Equal(t, "#A8D8EA", p.Snap("#F9F5F6"), "a couple color is not valid on a friends board")
}

// An invalid note color always becomes the category default, never the submitted value.
func TestProperty_InvalidNoteColorSnapsToDefault(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	categories := gen.OneConstOf(CategoryFriends, CategoryCouple)
	colors := gen.RegexMatch(`#[0-9A-Fa-f]{6}`)

	properties.Property("snap returns default for any color outside the palette", prop.ForAll(
		func(c Category, color string) bool {
			p := c.NotePalette()
			got := p.Snap(color)
			if p.Contains(color) {
				return got == strings.ToUpper(color)
			}
			return got == p.Default
		},
		categories, colors,
	))

	properties.Property("snap result is always a palette member", prop.ForAll(
		func(c Category, color string) bool {
			return c.NotePalette().Contains(c.NotePalette().Snap(color))
		},
		categories, gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestIsValidCode(t *testing.T) {
	assert.True(t, IsValidCode("ABC123"))
	assert.True(t, IsValidCode("ZZZZZZ"))
	assert.False(t, IsValidCode("abc123"))
	assert.False(t, IsValidCode("ABC12"))
	assert.False(t, IsValidCode("ABC-12"))
}

func TestBoard_PublicDropsPasswordHash(t *testing.T) {
	hash := "$2a$10$abc"
	b := Board{Code: "ABC123", PasswordHash: &hash}

	assert.True(t, b.RequiresPassword())
	pub := b.Public()
	assert.Nil(t, pub.PasswordHash)
	assert.NotNil(t, b.PasswordHash, "original is untouched")
}
