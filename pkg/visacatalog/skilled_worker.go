package visacatalog

import "visa-casework-be/pkg/checklist"

// Evidence ids are shared between fields on purpose: section aggregation
// counts each id once regardless of how many fields reference it.
var skilledWorkerSchema = Schema{
	VisaType: VisaTypeSkilledWorker,
	Name:     "Skilled Worker Visa",
	Fields: []checklist.FieldDef{
		{
			Key:        "full_name",
			Section:    checklist.SectionPersonal,
			Label:      "Full name",
			Required:   true,
			Kind:       checklist.KindText,
			QuestionId: "q_full_name",
			Extraction: &checklist.ExtractionHint{GroupTitle: "Passport", Value: "Amara N. Okafor"},
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-passport", Name: "Passport", Mandatory: true, ValidityPeriod: "6 months beyond intended stay"},
			},
		},
		{
			Key:        "date_of_birth",
			Section:    checklist.SectionPersonal,
			Label:      "Date of birth",
			Required:   true,
			Kind:       checklist.KindDate,
			QuestionId: "q_date_of_birth",
			Extraction: &checklist.ExtractionHint{GroupTitle: "Passport", Value: "1991-04-17"},
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-passport", Name: "Passport", Mandatory: true, ValidityPeriod: "6 months beyond intended stay"},
			},
		},
		{
			Key:        "nationality",
			Section:    checklist.SectionPersonal,
			Label:      "Nationality",
			Required:   true,
			Kind:       checklist.KindText,
			QuestionId: "q_nationality",
		},
		{
			Key:        "employer_name",
			Section:    checklist.SectionEmployment,
			Label:      "Employer name",
			Required:   true,
			Kind:       checklist.KindText,
			Extraction: &checklist.ExtractionHint{GroupTitle: "Payslips", Value: "Meridian Logistics Ltd"},
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-payslips", Name: "Payslips", Mandatory: true, ValidityPeriod: "last 3 months"},
				{Id: "ev-employment-contract", Name: "Employment Contract", Mandatory: true},
			},
		},
		{
			Key:        "job_title",
			Section:    checklist.SectionEmployment,
			Label:      "Job title",
			Required:   true,
			Kind:       checklist.KindText,
			QuestionId: "q_job_title",
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-employment-contract", Name: "Employment Contract", Mandatory: true},
				{Id: "ev-sponsor-certificate", Name: "Certificate of Sponsorship", Mandatory: true},
			},
		},
		{
			Key:        "monthly_salary",
			Section:    checklist.SectionEmployment,
			Label:      "Monthly salary",
			Required:   true,
			Kind:       checklist.KindText,
			Extraction: &checklist.ExtractionHint{GroupTitle: "Payslips", Value: "4250 GBP"},
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-payslips", Name: "Payslips", Mandatory: true, ValidityPeriod: "last 3 months"},
			},
		},
		{
			Key:        "employment_start_date",
			Section:    checklist.SectionEmployment,
			Label:      "Employment start date",
			Required:   false,
			Kind:       checklist.KindDate,
			QuestionId: "q_employment_start_date",
		},
		{
			Key:        "bank_balance",
			Section:    checklist.SectionFinancial,
			Label:      "Current bank balance",
			Required:   true,
			Kind:       checklist.KindText,
			Extraction: &checklist.ExtractionHint{GroupTitle: "Bank Statements", Value: "12840 GBP"},
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-bank-statements", Name: "Bank Statements", Mandatory: true, ValidityPeriod: "last 6 months"},
			},
		},
		{
			Key:        "maintenance_funds",
			Section:    checklist.SectionFinancial,
			Label:      "Maintenance funds held for 28 days",
			Required:   true,
			Kind:       checklist.KindChoice,
			Options:    []string{"yes", "no"},
			QuestionId: "q_maintenance_funds",
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-bank-statements", Name: "Bank Statements", Mandatory: true, ValidityPeriod: "last 6 months"},
			},
		},
		{
			Key:        "intended_arrival_date",
			Section:    checklist.SectionTravel,
			Label:      "Intended arrival date",
			Required:   true,
			Kind:       checklist.KindDate,
			QuestionId: "q_intended_arrival_date",
		},
		{
			Key:        "uk_address",
			Section:    checklist.SectionTravel,
			Label:      "UK accommodation address",
			Required:   false,
			Kind:       checklist.KindText,
			QuestionId: "q_uk_address",
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-accommodation", Name: "Accommodation Proof", Mandatory: false},
			},
		},
		{
			Key:        "english_level",
			Section:    checklist.SectionEducation,
			Label:      "English language level",
			Required:   true,
			Kind:       checklist.KindChoice,
			Options:    []string{"A1", "A2", "B1", "B2", "C1", "C2"},
			QuestionId: "q_english_level",
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-english-test", Name: "English Test Certificate", Mandatory: true, ValidityPeriod: "2 years"},
			},
		},
		{
			Key:        "marital_status",
			Section:    checklist.SectionFamily,
			Label:      "Marital status",
			Required:   false,
			Kind:       checklist.KindChoice,
			Options:    []string{"single", "married", "divorced", "widowed"},
			QuestionId: "q_marital_status",
		},
		{
			Key:        "criminal_record",
			Section:    checklist.SectionOther,
			Label:      "Criminal record declaration",
			Required:   true,
			Kind:       checklist.KindChoice,
			Options:    []string{"yes", "no"},
			QuestionId: "q_criminal_record",
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-police-clearance", Name: "Police Clearance Certificate", Mandatory: false, ValidityPeriod: "6 months"},
			},
		},
	},
	Questions: []Question{
		{Id: "q_full_name", Text: "What is your full legal name?", Kind: checklist.KindText},
		{Id: "q_date_of_birth", Text: "What is your date of birth?", Kind: checklist.KindDate},
		{Id: "q_nationality", Text: "What is your nationality?", Kind: checklist.KindText},
		{Id: "q_job_title", Text: "What is the job title on your Certificate of Sponsorship?", Kind: checklist.KindText},
		{Id: "q_employment_start_date", Text: "When does your employment start?", Kind: checklist.KindDate},
		{Id: "q_maintenance_funds", Text: "Have you held the required maintenance funds for 28 days?", Kind: checklist.KindChoice, Options: []string{"yes", "no"}},
		{Id: "q_intended_arrival_date", Text: "When do you intend to arrive?", Kind: checklist.KindDate},
		{Id: "q_uk_address", Text: "Where will you stay in the UK?", Kind: checklist.KindText},
		{Id: "q_english_level", Text: "What is your certified English level?", Kind: checklist.KindChoice, Options: []string{"A1", "A2", "B1", "B2", "C1", "C2"}},
		{Id: "q_marital_status", Text: "What is your marital status?", Kind: checklist.KindChoice, Options: []string{"single", "married", "divorced", "widowed"}},
		{Id: "q_criminal_record", Text: "Do you have a criminal record?", Kind: checklist.KindChoice, Options: []string{"yes", "no"}},
	},
}
