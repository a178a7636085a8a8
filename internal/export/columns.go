package export

import "strings"

// sectionAColumns fixes the workbook column order. The headers mirror the
// Annexure II question numbering so one row reads top-to-bottom like the
// Section A template.
var sectionAColumns = []string{
	"Sector",
	"1. Corporate Identity Number (CIN)",
	"2. Name of Listed Entity",
	"3. Year of Incorporation",
	"4. Registered office address",
	"5. Corporate office address",
	"6. Email ID",
	"7. Telephone number",
	"8. Website",
	"9. Financial Year",
	"10. Stock Exchange Listing",
	"11. Paid-up Capital",
	"12. Contact Person Details",
	"13. Reporting boundary",
	"14. Name of assurance provider",
	"15. Type of assurance",
	"16. Business Activity",
	"16.a Main Business Activity",
	"16.b Description of Business Activity",
	"16.c % of Turnover",
	"17. Products/Services",
	"17.a Product/Service",
	"17.b NIC Code",
	"17.c % Turnover",
	"18. Number of Locations",
	"18.a National Plants",
	"18.b National Offices",
	"18.c International Plants",
	"18.d International Offices",
	"19.a International Countries",
	"19.b Export %",
	"19.c Customers Brief",
	"20. Employees and Workers",
	"20.A Total Permanent Employees",
	"20.A Permanent Male Employees",
	"20.A Permanent Female Employees",
	"20.A Other than Permanent",
	"20.A Other Male",
	"20.A Other Female",
	"20.A Total Employees",
	"20.A Total Male",
	"20.A Total Female",
	"20.B Permanent Workers",
	"20.B Permanent Male Workers",
	"20.B Permanent Female Workers",
	"20.B Other Workers",
	"20.B Other Male Workers",
	"20.B Other Female Workers",
	"20.B Total Workers",
	"20.B Total Male Workers",
	"20.B Total Female Workers",
	"20.C DA Employees Total Permanent",
	"20.C DA Permanent Male",
	"20.C DA Permanent Female",
	"20.C DA Other",
	"20.C DA Other Male",
	"20.C DA Other Female",
	"20.C DA Total Employees",
	"21. Women Representation",
	"21.a Board Total",
	"21.b Board Women",
	"21.c KMP Total",
	"21.d KMP Women",
	"22. Turnover Rate",
	"22.a Emp Male",
	"22.b Emp Female",
	"22.c Emp Total",
	"22.d Worker Male",
	"22.e Worker Female",
	"22.f Worker Total",
	"23. Group Entity",
	"23. Group Entity Type",
	"23. Mapped Group Entity Type",
	"23. % Shares",
	"24.a CSR Applicable",
	"24.b CSR Turnover",
	"24.c CSR Net Worth",
	"25. Grievance Redressal",
	"25.a Communities",
	"25.a Investors (other than shareholders)",
	"25.a Shareholders",
	"25.a Employees and workers",
	"25.a Customers",
	"25.a Value Chain Partners",
	"25.a Others",
	"25.b Communities",
	"25.b Investors (other than shareholders)",
	"25.b Shareholders",
	"25.b Employees and workers",
	"25.b Customers",
	"25.b Value Chain Partners",
	"25.b Others",
	"25.c Communities",
	"25.c Investors (other than shareholders)",
	"25.c Shareholders",
	"25.c Employees and workers",
	"25.c Customers",
	"25.c Value Chain Partners",
	"25.c Others",
	"26. Category",
	"26. Material Issue",
	"26. Risk/Opportunity",
	"26. Rationale",
	"26. Financial Impact",
	"26. Approach to Adapt/Mitigate",
}

var groupEntityTypes = map[string]string{
	"associate":                         "Associate Company",
	"associate company":                 "Associate Company",
	"joint venture":                     "Joint Venture",
	"subsidiary":                        "Subsidiary Company",
	"subsidiary company":                "Subsidiary Company",
	"material wholly owned subsidiary":  "Wholly Owned Subsidiary",
	"step down wholly owned subsidiary": "Wholly Owned Subsidiary",
	"wholly owned subsidiary":           "Wholly Owned Subsidiary",
	"holding":                           "Holding Company",
	"intermediary holding":              "Intermediary Holding Company",
	"ultimate holding":                  "Ultimate Holding Company",
	"step-down subsidiary":              "Step-Down Subsidiary",
	"subsidiary (incorporated under section 8 of the companies act, 2013)": "Subsidiary Company",
}

// mapGroupEntityType canonicalizes the free-form holding/subsidiary type
// reported in filings.
func mapGroupEntityType(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	key := strings.ToLower(trimmed)
	if mapped, ok := groupEntityTypes[key]; ok {
		return mapped
	}
	switch {
	case strings.Contains(key, "wholly owned"):
		return "Wholly Owned Subsidiary"
	case strings.Contains(key, "ultimate holding"):
		return "Ultimate Holding Company"
	case strings.Contains(key, "intermediary") && strings.Contains(key, "holding"):
		return "Intermediary Holding Company"
	case strings.Contains(key, "associate"):
		return "Associate Company"
	case strings.Contains(key, "joint") && strings.Contains(key, "venture"):
		return "Joint Venture"
	case key == "holding" || strings.HasSuffix(key, " holding"):
		return "Holding Company"
	case strings.Contains(key, "subsidiary"):
		return "Subsidiary Company"
	}
	return trimmed
}
