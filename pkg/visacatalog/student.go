package visacatalog

import "visa-casework-be/pkg/checklist"

var studentSchema = Schema{
	VisaType: VisaTypeStudent,
	Name:     "Student Visa",
	Fields: []checklist.FieldDef{
		{
			Key:        "full_name",
			Section:    checklist.SectionPersonal,
			Label:      "Full name",
			Required:   true,
			Kind:       checklist.KindText,
			QuestionId: "q_full_name",
			Extraction: &checklist.ExtractionHint{GroupTitle: "Passport", Value: "Daniyar K. Seitkali"},
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-passport", Name: "Passport", Mandatory: true, ValidityPeriod: "duration of course"},
			},
		},
		{
			Key:        "date_of_birth",
			Section:    checklist.SectionPersonal,
			Label:      "Date of birth",
			Required:   true,
			Kind:       checklist.KindDate,
			QuestionId: "q_date_of_birth",
			Extraction: &checklist.ExtractionHint{GroupTitle: "Passport", Value: "2002-11-03"},
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-passport", Name: "Passport", Mandatory: true, ValidityPeriod: "duration of course"},
			},
		},
		{
			Key:        "cas_number",
			Section:    checklist.SectionEducation,
			Label:      "CAS reference number",
			Required:   true,
			Kind:       checklist.KindText,
			Extraction: &checklist.ExtractionHint{GroupTitle: "CAS Letter", Value: "E4G7XK29PQ"},
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-cas-letter", Name: "CAS Letter", Mandatory: true, ValidityPeriod: "6 months"},
			},
		},
		{
			Key:        "course_name",
			Section:    checklist.SectionEducation,
			Label:      "Course name",
			Required:   true,
			Kind:       checklist.KindText,
			QuestionId: "q_course_name",
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-cas-letter", Name: "CAS Letter", Mandatory: true, ValidityPeriod: "6 months"},
				{Id: "ev-qualifications", Name: "Academic Qualifications", Mandatory: true},
			},
		},
		{
			Key:        "course_start_date",
			Section:    checklist.SectionEducation,
			Label:      "Course start date",
			Required:   true,
			Kind:       checklist.KindDate,
			QuestionId: "q_course_start_date",
		},
		{
			Key:        "tuition_paid",
			Section:    checklist.SectionFinancial,
			Label:      "Tuition fees paid to date",
			Required:   true,
			Kind:       checklist.KindText,
			QuestionId: "q_tuition_paid",
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-tuition-receipt", Name: "Tuition Receipt", Mandatory: false},
			},
		},
		{
			Key:        "bank_balance",
			Section:    checklist.SectionFinancial,
			Label:      "Current bank balance",
			Required:   true,
			Kind:       checklist.KindText,
			Extraction: &checklist.ExtractionHint{GroupTitle: "Bank Statements", Value: "9300 GBP"},
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-bank-statements", Name: "Bank Statements", Mandatory: true, ValidityPeriod: "last 28 days"},
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
			Key:        "parental_consent",
			Section:    checklist.SectionFamily,
			Label:      "Parental consent (under 18 only)",
			Required:   false,
			Kind:       checklist.KindChoice,
			Options:    []string{"yes", "no", "not-applicable"},
			QuestionId: "q_parental_consent",
			Evidence: []checklist.EvidenceDef{
				{Id: "ev-consent-letter", Name: "Parental Consent Letter", Mandatory: false},
			},
		},
	},
	Questions: []Question{
		{Id: "q_full_name", Text: "What is your full legal name?", Kind: checklist.KindText},
		{Id: "q_date_of_birth", Text: "What is your date of birth?", Kind: checklist.KindDate},
		{Id: "q_course_name", Text: "Which course will you study?", Kind: checklist.KindText},
		{Id: "q_course_start_date", Text: "When does the course start?", Kind: checklist.KindDate},
		{Id: "q_tuition_paid", Text: "How much tuition have you already paid?", Kind: checklist.KindText},
		{Id: "q_intended_arrival_date", Text: "When do you intend to arrive?", Kind: checklist.KindDate},
		{Id: "q_parental_consent", Text: "If you are under 18, do you have parental consent?", Kind: checklist.KindChoice, Options: []string{"yes", "no", "not-applicable"}},
	},
}
