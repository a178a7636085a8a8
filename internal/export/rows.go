package export

import (
	"encoding/json"
	"sort"
)

// row maps column headers to cell values for one workbook row.
type row map[string]any

// flattenDocument turns one extracted Section A JSON document into its
// workbook rows: a base row carrying the scalar answers, repeated as many
// times as needed to list every group entity (23) and every material
// risk/opportunity item (26). Continuation rows keep only the CIN and the
// entity name so the sheet stays greppable by company.
func flattenDocument(raw json.RawMessage) ([]row, error) {
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}

	base := buildBaseRow(data)
	holdings := sortedHoldings(data)
	riskRows := buildRiskRows(data)

	total := len(holdings)
	if len(riskRows) > total {
		total = len(riskRows)
	}
	if total < 1 {
		total = 1
	}

	out := make([]row, 0, total)
	for i := 0; i < total; i++ {
		var r row
		if i == 0 {
			r = cloneRow(base)
		} else {
			r = row{
				"1. Corporate Identity Number (CIN)": base["1. Corporate Identity Number (CIN)"],
				"2. Name of Listed Entity":           base["2. Name of Listed Entity"],
			}
		}
		if i < len(holdings) {
			applyHolding(r, holdings[i])
		}
		if i < len(riskRows) {
			for k, v := range riskRows[i] {
				r[k] = v
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func buildBaseRow(data map[string]any) row {
	entity := subMap(data, "entity_details")
	business := subMap(data, "business_activity")
	locations := subMap(data, "locations")
	markets := subMap(data, "markets_served")
	employees := subMap(data, "employees")
	women := subMap(data, "women_representation")
	turnover := subMap(data, "turnover_rate")
	csr := subMap(data, "csr")
	grievances := subMap(data, "grievances")

	var product map[string]any
	if products, ok := data["products_services"].([]any); ok && len(products) > 0 {
		product, _ = products[0].(map[string]any)
	}

	r := row{}
	r["Sector"] = entity["sector"]
	r["1. Corporate Identity Number (CIN)"] = entity["cin"]
	r["2. Name of Listed Entity"] = entity["name"]
	r["3. Year of Incorporation"] = entity["year_of_incorporation"]
	r["4. Registered office address"] = entity["registered_office_address"]
	r["5. Corporate office address"] = entity["corporate_office_address"]
	r["6. Email ID"] = entity["email"]
	r["7. Telephone number"] = entity["telephone"]
	r["8. Website"] = entity["website"]
	r["9. Financial Year"] = entity["financial_year"]
	r["10. Stock Exchange Listing"] = entity["stock_exchange_listing"]
	r["11. Paid-up Capital"] = entity["paid_up_capital"]
	r["12. Contact Person Details"] = entity["contact_person_details"]
	r["13. Reporting boundary"] = entity["reporting_boundary"]
	r["14. Name of assurance provider"] = entity["assurance_provider"]
	r["15. Type of assurance"] = entity["assurance_type"]

	r["16.a Main Business Activity"] = business["main_activity_description"]
	r["16.b Description of Business Activity"] = business["description"]
	r["16.c % of Turnover"] = business["percent_of_turnover"]

	if product != nil {
		r["17.a Product/Service"] = product["product_service"]
		r["17.b NIC Code"] = product["nic_code"]
		r["17.c % Turnover"] = product["percent_of_total_turnover"]
	}

	r["18.a National Plants"] = locations["national_plants"]
	r["18.b National Offices"] = locations["national_offices"]
	r["18.c International Plants"] = locations["international_plants"]
	r["18.d International Offices"] = locations["international_offices"]

	r["19.a International Countries"] = markets["international_countries"]
	r["19.b Export %"] = markets["export_percent"]
	r["19.c Customers Brief"] = markets["customers_brief"]

	emp := subMap(employees, "employees")
	r["20.A Total Permanent Employees"] = emp["total_permanent"]
	r["20.A Permanent Male Employees"] = emp["permanent_male"]
	r["20.A Permanent Female Employees"] = emp["permanent_female"]
	r["20.A Other than Permanent"] = emp["other_than_permanent"]
	r["20.A Other Male"] = emp["other_than_permanent_male"]
	r["20.A Other Female"] = emp["other_than_permanent_female"]
	r["20.A Total Employees"] = emp["total_employees"]
	r["20.A Total Male"] = emp["total_male"]
	r["20.A Total Female"] = emp["total_female"]

	workers := subMap(employees, "workers")
	r["20.B Permanent Workers"] = workers["total_permanent"]
	r["20.B Permanent Male Workers"] = workers["permanent_male"]
	r["20.B Permanent Female Workers"] = workers["permanent_female"]
	r["20.B Other Workers"] = workers["other_than_permanent"]
	r["20.B Other Male Workers"] = workers["other_than_permanent_male"]
	r["20.B Other Female Workers"] = workers["other_than_permanent_female"]
	r["20.B Total Workers"] = workers["total_workers"]
	r["20.B Total Male Workers"] = workers["total_male"]
	r["20.B Total Female Workers"] = workers["total_female"]

	daEmp := subMap(employees, "differently_abled_employees")
	r["20.C DA Employees Total Permanent"] = daEmp["total_permanent"]
	r["20.C DA Permanent Male"] = daEmp["permanent_male"]
	r["20.C DA Permanent Female"] = daEmp["permanent_female"]
	r["20.C DA Other"] = daEmp["other_than_permanent"]
	r["20.C DA Other Male"] = daEmp["other_than_permanent_male"]
	r["20.C DA Other Female"] = daEmp["other_than_permanent_female"]
	r["20.C DA Total Employees"] = daEmp["total_employees"]

	r["21.a Board Total"] = women["board_of_directors_total"]
	r["21.b Board Women"] = women["board_of_directors_women"]
	r["21.c KMP Total"] = women["kmp_total"]
	r["21.d KMP Women"] = women["kmp_women"]

	permEmp := subMap(turnover, "permanent_employees")
	r["22.a Emp Male"] = permEmp["male"]
	r["22.b Emp Female"] = permEmp["female"]
	r["22.c Emp Total"] = permEmp["total"]
	permWorkers := subMap(turnover, "permanent_workers")
	r["22.d Worker Male"] = permWorkers["male"]
	r["22.e Worker Female"] = permWorkers["female"]
	r["22.f Worker Total"] = permWorkers["total"]

	r["24.a CSR Applicable"] = csr["is_applicable"]
	r["24.b CSR Turnover"] = csr["turnover_inr_cr"]
	r["24.c CSR Net Worth"] = csr["net_worth_inr_cr"]

	applyGrievanceGroup(r, "25.a", subMap(grievances, "mechanism_in_place"))
	applyGrievanceGroup(r, "25.b", subMap(grievances, "filed"))
	applyGrievanceGroup(r, "25.c", subMap(grievances, "pending"))

	return r
}

func applyGrievanceGroup(r row, prefix string, group map[string]any) {
	r[prefix+" Communities"] = group["communities"]
	r[prefix+" Investors (other than shareholders)"] = group["investors_other_than_shareholders"]
	r[prefix+" Shareholders"] = group["shareholders"]
	r[prefix+" Employees and workers"] = group["employees_and_workers"]
	r[prefix+" Customers"] = group["customers"]
	r[prefix+" Value Chain Partners"] = group["value_chain_partners"]
	r[prefix+" Others"] = group["other_please_specify"]
}

func applyHolding(r row, holding map[string]any) {
	rawType, _ := holding["type"].(string)
	r["23. Group Entity"] = holding["name"]
	r["23. Group Entity Type"] = rawType
	r["23. Mapped Group Entity Type"] = mapGroupEntityType(rawType)
	r["23. % Shares"] = holding["percent_shares_held"]
}

func sortedHoldings(data map[string]any) []map[string]any {
	raw, ok := data["holding_subsidiaries"].([]any)
	if !ok {
		return nil
	}
	var out []map[string]any
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := out[i]["type"].(string)
		tj, _ := out[j]["type"].(string)
		return ti < tj
	})
	return out
}

func buildRiskRows(data map[string]any) []row {
	risks := data["material_risks_opportunities"]
	var out []row
	for _, category := range []string{"environment", "social", "governance"} {
		for _, item := range riskItems(risks, category) {
			out = append(out, row{
				"26. Category":                   titleCase(category),
				"26. Material Issue":             item["material_issue"],
				"26. Risk/Opportunity":           item["risk_or_opportunity"],
				"26. Rationale":                  item["rationale"],
				"26. Financial Impact":           item["financial_implications"],
				"26. Approach to Adapt/Mitigate": item["approach_to_adapt_mitigate"],
			})
		}
	}
	return out
}

// riskItems tolerates both shapes models emit: the canonical object keyed by
// category, and a list of either category wrappers or bare risk items.
func riskItems(risks any, category string) []map[string]any {
	switch v := risks.(type) {
	case map[string]any:
		items, _ := v[category].([]any)
		return onlyMaps(items)
	case []any:
		var out []map[string]any
		for _, el := range v {
			m, ok := el.(map[string]any)
			if !ok {
				continue
			}
			if nested, ok := m[category].([]any); ok {
				out = append(out, onlyMaps(nested)...)
				continue
			}
			if _, ok := m["material_issue"]; ok {
				out = append(out, m)
				continue
			}
			if _, ok := m["rationale"]; ok {
				out = append(out, m)
				continue
			}
			if _, ok := m["risk_or_opportunity"]; ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

func onlyMaps(items []any) []map[string]any {
	var out []map[string]any
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func subMap(data map[string]any, key string) map[string]any {
	if data == nil {
		return map[string]any{}
	}
	if m, ok := data[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func cloneRow(r row) row {
	out := make(row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
