package visacatalog

import "visa-casework-be/pkg/checklist"

var familyReunionSchema = Schema{
	VisaType: VisaTypeFamilyReunion,
	Name:     "Family Reunion Visa",
	Fields: []checklist.FieldDef{
		{
			Key:        "full_name",
			Section:    checklist.SectionPersonal,
			Label:      "Full name",
			Required:   true,
			Kind:       checklist.KindText,
			QuestionId: "q_full_name",
			Extraction: &checklist.ExtractionHint{GroupTitle: "Passport", Value: "Lejla Hadzic"},
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-passport", Name: "Passport", Mandatory: true},
			},
		},
		{
			Key:        "sponsor_name",
			Section:    checklist.SectionFamily,
			Label:      "Sponsor's full name",
			Required:   true,
			Kind:       checklist.KindText,
			QuestionId: "q_sponsor_name",
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-sponsor-status", Name: "Sponsor Status Proof", Mandatory: true},
			},
		},
		{
			Key:        "relationship",
			Section:    checklist.SectionFamily,
			Label:      "Relationship to sponsor",
			Required:   true,
			Kind:       checklist.KindChoice,
			Options:    []string{"spouse", "child", "parent", "sibling"},
			QuestionId: "q_relationship",
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-relationship-proof", Name: "Relationship Certificate", Mandatory: true},
				{Id: "ev-sponsor-status", Name: "Sponsor Status Proof", Mandatory: true},
			},
		},
		{
			Key:        "marriage_date",
			Section:    checklist.SectionFamily,
			Label:      "Date of marriage (spouses only)",
			Required:   false,
			Kind:       checklist.KindDate,
			QuestionId: "q_marriage_date",
			Extraction: &checklist.ExtractionHint{GroupTitle: "Relationship Certificate", Value: "2017-06-24"},
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-relationship-proof", Name: "Relationship Certificate", Mandatory: true},
			},
		},
		{
			Key:        "sponsor_income",
			Section:    checklist.SectionFinancial,
			Label:      "Sponsor's annual income",
			Required:   true,
			Kind:       checklist.KindText,
			Extraction: &checklist.ExtractionHint{GroupTitle: "Sponsor Payslips", Value: "31200 GBP"},
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-sponsor-payslips", Name: "Sponsor Payslips", Mandatory: true, ValidityPeriod: "last 6 months"},
			},
		},
		{
			Key:        "shared_address",
			Section:    checklist.SectionTravel,
			Label:      "Address you will share with the sponsor",
			Required:   true,
			Kind:       checklist.KindText,
			QuestionId: "q_shared_address",
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-tenancy", Name: "Tenancy Agreement", Mandatory: false},
			},
		},
	},
	Questions: []Question{
		{Id: "q_full_name", Text: "What is your full legal name?", Kind: checklist.KindText},
		{Id: "q_sponsor_name", Text: "What is your sponsor's full name?", Kind: checklist.KindText},
		{Id: "q_relationship", Text: "What is your relationship to the sponsor?", Kind: checklist.KindChoice, Options: []string{"spouse", "child", "parent", "sibling"}},
		{Id: "q_marriage_date", Text: "If married to the sponsor, when did you marry?", Kind: checklist.KindDate},
		{Id: "q_shared_address", Text: "At which address will you live together?", Kind: checklist.KindText},
	},
}
