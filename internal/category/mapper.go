package category

import "strings"

// keywordGroup maps a set of substrings to a canonical category.
// Groups are tested in order; the first group with any matching
// keyword wins.
type keywordGroup struct {
	target   Category
	keywords []string
}

// keywordGroups is the ordered mapping table. Order matters: a source
// category mentioning both "sign" and "motorway" is filed under signs
// because that group is tested first.
var keywordGroups = []keywordGroup{
	{Signs, []string{"sign", "signal", "marking", "light"}},
	{Incidents, []string{"accident", "emergency", "crash"}},
	{OtherVehicles, []string{"bus", "truck", "motorcycle", "tram"}},
	{Handling, []string{"control", "handling", "skid", "steering", "dynamics"}},
	{Motorway, []string{"highway", "motorway", "lane"}},
	{Rules, []string{"rule", "law", "priority", "parking", "speed"}},
	{Margins, []string{"margin", "distance", "weather", "rain", "ice", "fog", "night", "condition"}},
	{VehicleSafety, []string{"maintenance", "safety", "check", "tire", "brake", "system"}},
	{Vulnerable, []string{"pedestrian", "cyclist", "child", "vulnerable", "horse"}},
	{Loading, []string{"load", "tow", "weight"}},
	{Alertness, []string{"alert", "observation", "tired", "fatigue", "distract", "drug", "alcohol", "fitness"}},
	{Attitude, []string{"attitude", "behavior", "aggressive", "courtesy"}},
	{Documents, []string{"document", "licens", "insur", "regist"}},
}

// Map resolves a raw source category (and optionally the question
// text) to a canonical category. Pure and deterministic: the inputs
// are lower-cased, concatenated, and tested against the ordered
// keyword groups. No match falls back to DefaultCategory.
func Map(rawCategory, questionText string) Category {
	combined := strings.ToLower(rawCategory)
	if questionText != "" {
		combined += " " + strings.ToLower(questionText)
	}
	if strings.TrimSpace(combined) == "" {
		return DefaultCategory
	}

	for _, g := range keywordGroups {
		for _, kw := range g.keywords {
			if strings.Contains(combined, kw) {
				return g.target
			}
		}
	}
	return DefaultCategory
}
