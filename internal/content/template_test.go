package content

import (
	"reflect"
	"strings"
	"testing"
)

func TestGenerateIsDeterministic(t *testing.T) {
	first := Generate("Baner", "Pune", "GST Registration")
	second := Generate("Baner", "Pune", "GST Registration")
	if !reflect.DeepEqual(first, second) {
		t.Fatal("Generate returned different output for identical input")
	}
}

func TestGenerateBenefitBranching(t *testing.T) {
	cases := []struct {
		purpose string
		count   int
	}{
		{"GST Registration", 8},
		{"new gst registration", 8},
		{"Company Registration", 8},
		{"Private Limited Company Registration", 8},
		{"Mailing Address", 0},
		{"", 0},
	}

	for _, tc := range cases {
		page := Generate("Baner", "Pune", tc.purpose)
		if len(page.Benefits) != tc.count {
			t.Errorf("purpose %q: got %d benefits, want %d", tc.purpose, len(page.Benefits), tc.count)
		}
	}
}

func TestGenerateGSTAndIncorporationListsDiffer(t *testing.T) {
	gst := Generate("Baner", "Pune", "GST Registration")
	inc := Generate("Baner", "Pune", "Company Registration")
	if reflect.DeepEqual(gst.Benefits, inc.Benefits) {
		t.Fatal("expected distinct benefit lists per category")
	}
}

func TestGenerateInterpolatesNames(t *testing.T) {
	page := Generate("Indiranagar", "Bengaluru", "GST Registration")
	if !strings.Contains(page.Overview, "Indiranagar") || !strings.Contains(page.Overview, "Bengaluru") {
		t.Fatalf("overview missing interpolated names: %q", page.Overview)
	}
	if !strings.Contains(page.Overview, "GST Registration") {
		t.Fatalf("overview missing purpose: %q", page.Overview)
	}
	if page.Slug != "indiranagar-gst-registration" {
		t.Fatalf("unexpected slug %q", page.Slug)
	}
}

func TestGenerateWhyUsIsAlwaysEightTitledItems(t *testing.T) {
	for _, purpose := range []string{"GST Registration", "Company Registration", "Unknown Thing"} {
		page := Generate("Baner", "Pune", purpose)
		if len(page.WhyUs) != 8 {
			t.Fatalf("purpose %q: got %d why-us items, want 8", purpose, len(page.WhyUs))
		}
		for _, item := range page.WhyUs {
			if item.Title == "" {
				t.Fatalf("purpose %q: why-us item with empty title", purpose)
			}
		}
	}
}

func TestGeneratedContentNeverContainsDelimiter(t *testing.T) {
	page := Generate("Baner", "Pune", "Company Registration")
	for _, b := range page.Benefits {
		if strings.Contains(b, "|") {
			t.Fatalf("benefit contains pipe: %q", b)
		}
	}
	for _, w := range page.WhyUs {
		if strings.Contains(w.Title, "|") || strings.Contains(w.Description, "|") {
			t.Fatalf("why-us item contains pipe: %+v", w)
		}
	}
	if strings.Contains(page.Overview, "|") {
		t.Fatalf("overview contains pipe")
	}
}

func TestEncodedListsRoundTrip(t *testing.T) {
	page := Generate("Baner", "Pune", "GST Registration")

	benefits := SplitList(page.BenefitsEncoded())
	if !reflect.DeepEqual(benefits, page.Benefits) {
		t.Fatal("benefits did not round-trip through the encoded form")
	}

	segments := SplitList(page.WhyUsEncoded())
	if len(segments) != len(page.WhyUs) {
		t.Fatalf("got %d why-us segments, want %d", len(segments), len(page.WhyUs))
	}
	for i, segment := range segments {
		title, description := SplitTitled(segment)
		if title != page.WhyUs[i].Title || description != page.WhyUs[i].Description {
			t.Fatalf("segment %d decoded to (%q, %q), want (%q, %q)",
				i, title, description, page.WhyUs[i].Title, page.WhyUs[i].Description)
		}
	}
}

func TestClassifyPurpose(t *testing.T) {
	cases := []struct {
		purpose string
		want    PurposeCategory
	}{
		{"GST Registration", CategoryGST},
		{"gst amendment", CategoryGST},
		{"Company Registration", CategoryIncorporation},
		{"COMPANY REGISTRATION", CategoryIncorporation},
		{"GST plus Company Registration", CategoryGST},
		{"Mailing Address", CategoryGeneral},
	}
	for _, tc := range cases {
		if got := ClassifyPurpose(tc.purpose); got != tc.want {
			t.Errorf("ClassifyPurpose(%q) = %v, want %v", tc.purpose, got, tc.want)
		}
	}
}
