package content

import "strings"

// PurposeCategory selects which benefit template set applies to a
// purpose. Purposes that match no known category carry no benefit list.
type PurposeCategory int

const (
	CategoryGeneral PurposeCategory = iota
	CategoryGST
	CategoryIncorporation
)

// String returns a stable label for logs and admin views.
func (c PurposeCategory) String() string {
	switch c {
	case CategoryGST:
		return "gst"
	case CategoryIncorporation:
		return "incorporation"
	default:
		return "general"
	}
}

// purposeKeywords maps a category to the lowercase substrings that select
// it. Order matters: the first category whose keyword matches wins.
var purposeKeywords = []struct {
	category PurposeCategory
	keywords []string
}{
	{CategoryGST, []string{"gst"}},
	{CategoryIncorporation, []string{"company registration"}},
}

// ClassifyPurpose resolves a free-form purpose string to its category
// with a case-insensitive keyword match.
func ClassifyPurpose(purpose string) PurposeCategory {
	lowered := strings.ToLower(purpose)
	for _, entry := range purposeKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lowered, keyword) {
				return entry.category
			}
		}
	}
	return CategoryGeneral
}

// DefaultPurposes is the purpose menu offered on the bulk generation
// screen. The batch endpoint itself accepts any purpose string.
var DefaultPurposes = []string{
	"GST Registration",
	"Company Registration",
	"Business Registration",
	"Mailing Address",
}
