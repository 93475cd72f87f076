package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/poiesic/matchpoint/core"
)

// brazilianStates maps the two-letter UF code to the state name. Abbreviation
// matching is case-sensitive (standalone uppercase token) to avoid false hits
// on common words like "to", "se" and "ba" in running text.
var brazilianStates = map[string]string{
	"AC": "Acre",
	"AL": "Alagoas",
	"AP": "Amapá",
	"AM": "Amazonas",
	"BA": "Bahia",
	"CE": "Ceará",
	"DF": "Distrito Federal",
	"ES": "Espírito Santo",
	"GO": "Goiás",
	"MA": "Maranhão",
	"MT": "Mato Grosso",
	"MS": "Mato Grosso do Sul",
	"MG": "Minas Gerais",
	"PA": "Pará",
	"PB": "Paraíba",
	"PR": "Paraná",
	"PE": "Pernambuco",
	"PI": "Piauí",
	"RJ": "Rio de Janeiro",
	"RN": "Rio Grande do Norte",
	"RS": "Rio Grande do Sul",
	"RO": "Rondônia",
	"RR": "Roraima",
	"SC": "Santa Catarina",
	"SP": "São Paulo",
	"SE": "Sergipe",
	"TO": "Tocantins",
}

// capitalCities maps well-known city names (lowercase) to their UF code.
// Used when a resume names the city without the state.
var capitalCities = map[string]string{
	"rio branco":      "AC",
	"maceió":          "AL",
	"macapá":          "AP",
	"manaus":          "AM",
	"salvador":        "BA",
	"fortaleza":       "CE",
	"brasília":        "DF",
	"vitória":         "ES",
	"goiânia":         "GO",
	"são luís":        "MA",
	"cuiabá":          "MT",
	"campo grande":    "MS",
	"belo horizonte":  "MG",
	"belém":           "PA",
	"joão pessoa":     "PB",
	"curitiba":        "PR",
	"recife":          "PE",
	"teresina":        "PI",
	"rio de janeiro":  "RJ",
	"natal":           "RN",
	"porto alegre":    "RS",
	"porto velho":     "RO",
	"boa vista":       "RR",
	"florianópolis":   "SC",
	"são paulo":       "SP",
	"aracaju":         "SE",
	"palmas":          "TO",
	"campinas":        "SP",
	"guarulhos":       "SP",
	"osasco":          "SP",
	"santos":          "SP",
	"são bernardo do campo": "SP",
	"niterói":         "RJ",
	"uberlândia":      "MG",
	"contagem":        "MG",
	"londrina":        "PR",
	"joinville":       "SC",
	"caxias do sul":   "RS",
}

// cityScanOrder holds the gazetteer keys sorted by length descending so
// composite names ("são bernardo do campo") win over shorter ones, with a
// lexicographic tie-break for determinism.
var cityScanOrder = func() []string {
	cities := make([]string, 0, len(capitalCities))
	for city := range capitalCities {
		cities = append(cities, city)
	}
	sort.Slice(cities, func(i, j int) bool {
		if len(cities[i]) != len(cities[j]) {
			return len(cities[i]) > len(cities[j])
		}
		return cities[i] < cities[j]
	})
	return cities
}()

// stateScanOrder lists UF codes with longer state names first so that
// "Mato Grosso do Sul" and "Rio Grande do Norte/Sul" win over their
// prefixes during the substring scan.
var stateScanOrder = []string{
	"RN", "RS", "MS", "DF", "ES", "MG", "RJ", "SC", "SP", "MT",
	"AC", "AL", "AP", "AM", "BA", "CE", "GO", "MA", "PA", "PB",
	"PR", "PE", "PI", "RO", "RR", "SE", "TO",
}

// cityUFRE matches "City - SP", "City/SP" and "City, SP" shapes. The word
// boundary keeps "SPRING" from matching "SP".
var cityUFRE = regexp.MustCompile(`(\p{L}[\p{L}\p{M}\s]*?)\s*[,/\-]\s*([A-Z]{2})\b`)

// ufTokenRE matches a standalone uppercase two-letter token.
var ufTokenRE = regexp.MustCompile(`\b([A-Z]{2})\b`)

// InferLocation extracts a Brazilian location from free text. Resolution
// order: "City - UF" pair, full state name, known city name, bare UF token.
// Country is always Brasil when anything matched.
func InferLocation(text string) core.Location {
	if text == "" {
		return core.Location{}
	}

	if match := cityUFRE.FindStringSubmatch(text); match != nil {
		if name, ok := brazilianStates[match[2]]; ok {
			return core.Location{
				City:    trimCityCapture(match[1]),
				State:   name,
				Country: "Brasil",
			}
		}
	}

	lowered := strings.ToLower(text)
	for _, abbr := range stateScanOrder {
		name := brazilianStates[abbr]
		if strings.Contains(lowered, strings.ToLower(name)) {
			loc := core.Location{State: name, Country: "Brasil"}
			for _, city := range cityScanOrder {
				if capitalCities[city] == abbr && strings.Contains(lowered, city) {
					loc.City = city
					break
				}
			}
			return loc
		}
	}

	for _, city := range cityScanOrder {
		abbr := capitalCities[city]
		if strings.Contains(lowered, city) {
			return core.Location{
				City:    city,
				State:   brazilianStates[abbr],
				Country: "Brasil",
			}
		}
	}

	for _, match := range ufTokenRE.FindAllStringSubmatch(text, -1) {
		if name, ok := brazilianStates[match[1]]; ok {
			return core.Location{State: name, Country: "Brasil"}
		}
	}

	return core.Location{}
}

// trimCityCapture reduces a "words before the UF separator" capture to the
// city name. The capture greedily includes the surrounding phrase
// ("Residente em Campinas"), so the longest gazetteer suffix wins; with no
// gazetteer hit the last word is taken.
func trimCityCapture(capture string) string {
	fields := strings.Fields(capture)
	if len(fields) == 0 {
		return ""
	}

	for _, city := range cityScanOrder {
		cityFields := strings.Fields(city)
		if len(cityFields) > len(fields) {
			continue
		}
		tail := fields[len(fields)-len(cityFields):]
		if strings.EqualFold(strings.Join(tail, " "), city) {
			return strings.Join(tail, " ")
		}
	}

	return fields[len(fields)-1]
}

// ParseLocation builds a Location from declared structured fields, filling
// the country with Brasil when a city or state is present but the country
// field is blank. A bare UF code in the state field is expanded to the
// state name.
func ParseLocation(city, state, country string) core.Location {
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	country = strings.TrimSpace(country)

	if name, ok := brazilianStates[strings.ToUpper(state)]; ok {
		state = name
	}
	if country == "" && (city != "" || state != "") {
		country = "Brasil"
	}

	return core.Location{City: city, State: state, Country: country}
}
