package content

import "strings"

// WhyUsItem is one entry of the why-us section: a short title and a
// longer description.
type WhyUsItem struct {
	Title       string
	Description string
}

// PageContent is everything the template engine derives for one
// (area, city, purpose) combination.
type PageContent struct {
	Slug     string
	Overview string
	Benefits []string
	WhyUs    []WhyUsItem
}

const overviewTemplate = "Looking for a virtual office in {area}, {city} for {purpose}? " +
	"VirtualDesk gives your business a premium {area} address without the cost of a physical office. " +
	"Use it for {purpose}, business correspondence and client meetings, with complete documentation " +
	"support and same-week turnaround. Join the growing number of businesses in {city} that run on a " +
	"virtual office."

// Benefit templates per purpose category. The placeholders {area},
// {city} and {purpose} are interpolated at generation time. None of the
// text may contain a pipe character.
var gstBenefits = []string{
	"Premium business address in {area}, {city} accepted for GST registration",
	"Complete documentation support with rent agreement, NOC and utility bill",
	"Expert assistance with GST filing and amendments for businesses in {city}",
	"Officer verification for your GST application handled at the {area} address",
	"Save up to 90 percent compared to renting a physical office in {area}",
	"Address proof issued within 24 to 48 hours of onboarding",
	"Mail and courier handling for GST notices at your {area} address",
	"Dedicated compliance desk for {purpose} queries in {city}",
}

var incorporationBenefits = []string{
	"Registered office address in {area}, {city} accepted by the MCA",
	"End-to-end {purpose} support from name approval to certificate of incorporation",
	"Assistance with DSC and DIN applications for all directors",
	"Drafting support for MOA and AOA tailored to your business activity",
	"ROC filing assistance handled by experienced professionals in {city}",
	"Incorporation documentation kit issued within 24 to 48 hours",
	"Lower overheads while your company is registered at {area}",
	"Post-incorporation compliance reminders for your {city} entity",
}

var benefitTemplates = map[PurposeCategory][]string{
	CategoryGST:           gstBenefits,
	CategoryIncorporation: incorporationBenefits,
}

var whyUsTemplates = []WhyUsItem{
	{"Prime Location", "A prestigious {area} address in the heart of {city}"},
	{"Compliance Ready", "Documentation accepted by GST and MCA authorities"},
	{"Full Service", "Mail handling, call answering and meeting room access"},
	{"Proven Track Record", "Trusted by thousands of businesses across {city}"},
	{"Cost Effective", "A fraction of the cost of a conventional office in {area}"},
	{"Quick Turnaround", "Paperwork for {purpose} delivered within 48 hours"},
	{"Flexible Plans", "Monthly and yearly plans that scale with your business"},
	{"Pan-India Presence", "Offices across major cities including {city}"},
}

// Generate derives the full marketing copy and slug for one area/purpose
// combination. It is pure: the same inputs always produce the same
// output, and unknown purposes yield an empty benefit list rather than
// an error.
func Generate(areaName, cityName, purpose string) PageContent {
	replacer := strings.NewReplacer(
		"{area}", areaName,
		"{city}", cityName,
		"{purpose}", purpose,
	)

	category := ClassifyPurpose(purpose)

	var benefits []string
	if templates, ok := benefitTemplates[category]; ok {
		benefits = make([]string, len(templates))
		for i, t := range templates {
			benefits[i] = replacer.Replace(t)
		}
	}

	whyUs := make([]WhyUsItem, len(whyUsTemplates))
	for i, t := range whyUsTemplates {
		whyUs[i] = WhyUsItem{
			Title:       replacer.Replace(t.Title),
			Description: replacer.Replace(t.Description),
		}
	}

	return PageContent{
		Slug:     PageSlug(areaName, purpose),
		Overview: replacer.Replace(overviewTemplate),
		Benefits: benefits,
		WhyUs:    whyUs,
	}
}

// BenefitsEncoded returns the stored form of the benefit list.
func (p PageContent) BenefitsEncoded() string {
	return JoinList(p.Benefits)
}

// WhyUsEncoded returns the stored form of the why-us list, each segment
// encoded as "Title: Description".
func (p PageContent) WhyUsEncoded() string {
	segments := make([]string, len(p.WhyUs))
	for i, item := range p.WhyUs {
		if item.Description == "" {
			segments[i] = item.Title
			continue
		}
		segments[i] = item.Title + ": " + item.Description
	}
	return JoinList(segments)
}
