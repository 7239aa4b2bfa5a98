package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type countryCodes struct {
	code  string
	names []string
}

// currencies maps country names and ISO codes to a base currency.
var currencies = []countryCodes{
	{code: "MXN", names: []string{"México", "Mexico", "MX"}},
	{code: "CUP", names: []string{"Cuba"}},
	{code: "USD", names: []string{"Estados Unidos", "USA", "United States", "US"}},
	{code: "EUR", names: []string{
		"España", "Spain", "ES",
		"Alemania", "Germany", "DE",
		"Francia", "France", "FR",
		"Italia", "Italy", "IT",
	}},
	{code: "GBP", names: []string{"Reino Unido", "UK", "United Kingdom", "GB"}},
	{code: "JPY", names: []string{"Japón", "Japan", "JP"}},
	{code: "ARS", names: []string{"Argentina", "AR"}},
	{code: "BRL", names: []string{"Brasil", "Brazil", "BR"}},
	{code: "CLP", names: []string{"Chile", "CL"}},
	{code: "COP", names: []string{"Colombia", "CO"}},
	{code: "PEN", names: []string{"Perú", "Peru", "PE"}},
	{code: "VES", names: []string{"Venezuela", "VE"}},
	{code: "CAD", names: []string{"Canadá", "Canada", "CA"}},
	{code: "AUD", names: []string{"Australia", "AU"}},
	{code: "CNY", names: []string{"China", "CN"}},
}

// newsRegions maps country names to Google News region codes.
var newsRegions = []countryCodes{
	{code: "MX", names: []string{"México", "Mexico", "MX"}},
	{code: "US", names: []string{"Estados Unidos", "USA", "United States"}},
	{code: "ES", names: []string{"España", "Spain"}},
	{code: "AR", names: []string{"Argentina"}},
	{code: "BR", names: []string{"Brasil", "Brazil"}},
	{code: "CL", names: []string{"Chile"}},
	{code: "CN", names: []string{"China"}},
	{code: "CO", names: []string{"Colombia"}},
	{code: "CU", names: []string{"Cuba", "CU"}},
	{code: "PE", names: []string{"Perú", "Peru"}},
	{code: "PR", names: []string{"Puerto Rico"}},
	{code: "VE", names: []string{"Venezuela"}},
	{code: "FR", names: []string{"Francia", "France"}},
	{code: "DE", names: []string{"Alemania", "Germany"}},
	{code: "GB", names: []string{"Reino Unido", "UK", "United Kingdom"}},
	{code: "IT", names: []string{"Italia", "Italy"}},
	{code: "CA", names: []string{"Canadá", "Canada"}},
	{code: "AU", names: []string{"Australia"}},
}

var (
	currencyIndex = foldIndex(currencies)
	newsIndex     = foldIndex(newsRegions)
)

// fold builds a new Caser per call: a Caser keeps state and is not safe to share.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func foldIndex(table []countryCodes) map[string]string {
	index := map[string]string{}
	for _, entry := range table {
		for _, name := range entry.names {
			index[fold(name)] = entry.code
		}
	}
	return index
}

// CurrencyFor returns the base currency for a country name or code, case-insensitively.
func CurrencyFor(country string) (string, bool) {
	code, ok := currencyIndex[fold(country)]
	return code, ok
}

// NewsRegionFor returns the Google News region for a country name, case-insensitively.
func NewsRegionFor(country string) (string, bool) {
	code, ok := newsIndex[fold(country)]
	return code, ok
}

// NewsLanguage is the feed language for a region: Spain gets its own variant.
func NewsLanguage(region string) string {
	if region == "ES" {
		return "es-ES"
	}
	return "es-419"
}

// DisplayCountry title-cases user input for display ("méxico" -> "México").
func DisplayCountry(country string) string {
	return cases.Title(language.Spanish).String(strings.TrimSpace(country))
}

// FiatTarget is a currency shown in every exchange-rate answer.
type FiatTarget struct {
	Code string
	Name string
}

var FiatTargets = []FiatTarget{
	{Code: "USD", Name: "Dólar EE.UU."},
	{Code: "EUR", Name: "Euro"},
	{Code: "JPY", Name: "Yen Japonés"},
	{Code: "GBP", Name: "Libra Esterlina"},
}
