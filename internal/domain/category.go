package domain

import "strings"

// Category decides a board's capacity, palette and whether anonymous notes are allowed.
type Category string

const (
	CategoryFriends Category = "friends"
	CategoryCouple  Category = "couple"
)

// Palette is an ordered list of allowed colors; the first entry is not necessarily the default.
type Palette struct {
	Colors  []string
	Default string
}

// Contains reports whether color is a member of the palette, ignoring case.
func (p Palette) Contains(color string) bool {
	c := strings.ToUpper(strings.TrimSpace(color))
	for _, allowed := range p.Colors {
		if allowed == c {
			return true
		}
	}
	return false
}

// Snap returns the palette entry matching color, or the palette default.
func (p Palette) Snap(color string) string {
	if p.Contains(color) {
		return strings.ToUpper(strings.TrimSpace(color))
	}
	return p.Default
}

type categoryRules struct {
	maxUsers       int
	allowAnonymous bool
	border         Palette
	background     Palette
	note           Palette
}

var friendsFrame = []string{"#9EC6F3", "#BDDDE4", "#FFF1D5", "#FBFBFB"}
var coupleFrame = []string{"#FF9292", "#FFB4B4", "#FFDCDC", "#FFE8E8"}

var rules = map[Category]categoryRules{
	CategoryFriends: {
		maxUsers:       15,
		allowAnonymous: true,
		border:         Palette{Colors: friendsFrame, Default: "#9EC6F3"},
		background:     Palette{Colors: friendsFrame, Default: "#FBFBFB"},
		note:           Palette{Colors: []string{"#A8D8EA", "#AA96DA", "#FCBAD3", "#FFFFD2"}, Default: "#A8D8EA"},
	},
	CategoryCouple: {
		maxUsers:       2,
		allowAnonymous: false,
		border:         Palette{Colors: coupleFrame, Default: "#FF9292"},
		background:     Palette{Colors: coupleFrame, Default: "#FFE8E8"},
		note:           Palette{Colors: []string{"#F9F5F6", "#F8E8EE", "#FDCEDF", "#F2BED1"}, Default: "#F9F5F6"},
	},
}

// ParseCategory returns the category for s and false when s names no known category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	_, ok := rules[c]
	return c, ok
}

func (c Category) Valid() bool {
	_, ok := rules[c]
	return ok
}

// MaxUsers is the number of distinct users that may be present at once.
func (c Category) MaxUsers() int {
	return rules[c].maxUsers
}

func (c Category) AllowsAnonymous() bool {
	return rules[c].allowAnonymous
}

func (c Category) BorderPalette() Palette     { return rules[c].border }
func (c Category) BackgroundPalette() Palette { return rules[c].background }
func (c Category) NotePalette() Palette       { return rules[c].note }
