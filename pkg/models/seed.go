package models

// DefaultRequirements returns the checklist seeded for a student the first
// time their requirements document is read and none exists.
func DefaultRequirements() []Requirement {
	return []Requirement{
		{
			ID:          "resume",
			Title:       "Updated Resume",
			Description: "Current resume in PDF format",
			Category:    CategoryDocuments,
			Status:      StatusPending,
			IsRequired:  true,
		},
		{
			ID:          "endorsement-letter",
			Title:       "Endorsement Letter",
			Description: "Letter of endorsement from the coordinator",
			Category:    CategoryDocuments,
			Status:      StatusPending,
			IsRequired:  true,
		},
		{
			ID:          "waiver-form",
			Title:       "Parental Consent / Waiver Form",
			Description: "Signed waiver form",
			Category:    CategoryForms,
			Status:      StatusPending,
			IsRequired:  true,
		},
		{
			ID:          "medical-certificate",
			Title:       "Medical Certificate",
			Description: "Medical clearance from a licensed physician",
			Category:    CategoryCertifications,
			Status:      StatusPending,
			IsRequired:  true,
		},
		{
			ID:          "moa",
			Title:       "Memorandum of Agreement",
			Description: "MOA between the school and the host company",
			Category:    CategoryForms,
			Status:      StatusPending,
			IsRequired:  true,
		},
		{
			ID:          "registration-form",
			Title:       "Registration Form",
			Description: "Proof of enrollment for the current term",
			Category:    CategoryForms,
			Status:      StatusPending,
			IsRequired:  true,
		},
		{
			ID:          "insurance",
			Title:       "Insurance Certificate",
			Description: "Proof of accident insurance coverage",
			Category:    CategoryCertifications,
			Status:      StatusPending,
			IsRequired:  true,
		},
		{
			ID:          "portfolio",
			Title:       "Portfolio",
			Description: "Optional portfolio of past work",
			Category:    CategoryOther,
			Status:      StatusPending,
			IsRequired:  false,
		},
	}
}
