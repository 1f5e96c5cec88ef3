package profile

import "partypilot/models"

// Section keys for the supplier profile editor. Each key names one
// independently saved subset of ServiceDetails; handlers validate incoming
// keys against this set so a typo cannot create a phantom section.
const (
	SectionPricing      = "pricing"
	SectionVenueAddress = "venueAddress"
	SectionThemes       = "themes"
	SectionAbout        = "about"
	SectionPackages     = "packages"
	SectionServiceArea  = "serviceArea"
)

// ServiceDetailsExtractors maps each section key to the part of the
// supplier's service details it edits. This table is the configuration the
// tracker is generic over.
func ServiceDetailsExtractors() map[string]Extractor[models.ServiceDetails] {
	return map[string]Extractor[models.ServiceDetails]{
		SectionPricing:      func(d models.ServiceDetails) any { return d.Pricing },
		SectionVenueAddress: func(d models.ServiceDetails) any { return d.VenueAddress },
		SectionThemes:       func(d models.ServiceDetails) any { return d.Themes },
		SectionAbout:        func(d models.ServiceDetails) any { return d.About },
		SectionPackages:     func(d models.ServiceDetails) any { return d.Packages },
		SectionServiceArea:  func(d models.ServiceDetails) any { return d.ServiceArea },
	}
}

// IsKnownSection reports whether key names a supplier profile section.
func IsKnownSection(key string) bool {
	switch key {
	case SectionPricing, SectionVenueAddress, SectionThemes,
		SectionAbout, SectionPackages, SectionServiceArea:
		return true
	}
	return false
}
