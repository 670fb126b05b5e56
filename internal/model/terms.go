package model

// Term is a Darwin Core term carried by occurrence input files.
type Term struct {
	Name   string // e.g. "eventDate"
	Column string // parquet column name, e.g. "event_date"
}

// AllTerms lists the input terms in canonical order.
var AllTerms = []Term{
	{Name: "occurrenceID", Column: "occurrence_id"},
	{Name: "catalogNumber", Column: "catalog_number"},
	{Name: "institutionCode", Column: "institution_code"},
	{Name: "scientificName", Column: "scientific_name"},
	{Name: "countryCode", Column: "country_code"},
	{Name: "locality", Column: "locality"},
	{Name: "decimalLatitude", Column: "decimal_latitude"},
	{Name: "decimalLongitude", Column: "decimal_longitude"},
	{Name: "eventDate", Column: "event_date"},
	{Name: "verbatimEventDate", Column: "verbatim_event_date"},
	{Name: "dateIdentified", Column: "date_identified"},
}

// TermByName returns the Term for the given name, or ok=false.
func TermByName(name string) (Term, bool) {
	for _, t := range AllTerms {
		if t.Name == name {
			return t, true
		}
	}
	return Term{}, false
}

// RequiredColumns are the parquet columns every input file must carry.
func RequiredColumns() []string {
	return []string{"occurrence_id", "scientific_name"}
}
