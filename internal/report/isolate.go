package report

import "regexp"

// htmlRegion spans from the first opening html tag to the last closing one,
// including any MIME boundaries in between.
var htmlRegion = regexp.MustCompile(`(?is)<html.*</html>`)

// Fragment is the html document embedded in the archive.
type Fragment struct {
	Start int
	End   int
	Text  string
}

func isolateMarkup(text string) (Fragment, bool) {
	loc := htmlRegion.FindStringIndex(text)
	if loc == nil {
		return Fragment{}, false
	}
	return Fragment{Start: loc[0], End: loc[1], Text: text[loc[0]:loc[1]]}, true
}
