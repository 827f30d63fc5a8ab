package localize

// DefaultLocale is selected when no locale is configured
const DefaultLocale = "pt-BR"

// builtinFormats contains the bundles shipped with the package. Loaded bundles
// replace these per locale.
var builtinFormats = map[string]FormatSpec{
	"pt-BR": {
		Short:           "%d/%m/%Y",
		Full:            "%d/%m/%Y %H:%M:%S",
		Literal:         "%A, %d de %B de %Y",
		LiteralWithTime: "%A, %d de %B de %Y, %H:%M:%S",
		Number: NumberFormat{
			DecimalSep:   ",",
			ThousandsSep: ".",
		},
		Currency: CurrencyFormat{
			DecimalSep:   ",",
			ThousandsSep: ".",
			Symbol:       "R$",
			Code:         "BRL",
			Position:     "before",
		},
		MonthNames: []string{
			"janeiro", "fevereiro", "março", "abril", "maio", "junho",
			"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
		},
		ShortMonthNames: []string{
			"jan", "fev", "mar", "abr", "mai", "jun",
			"jul", "ago", "set", "out", "nov", "dez",
		},
		DayNames: []string{
			"domingo", "segunda-feira", "terça-feira", "quarta-feira",
			"quinta-feira", "sexta-feira", "sábado",
		},
		ShortDayNames: []string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"},
	},
	"en-US": {
		Short:           "%m/%d/%Y",
		Full:            "%m/%d/%Y %H:%M:%S",
		Literal:         "%A, %B %d, %Y",
		LiteralWithTime: "%A, %B %d, %Y, %H:%M:%S",
		Number: NumberFormat{
			DecimalSep:   ".",
			ThousandsSep: ",",
		},
		Currency: CurrencyFormat{
			DecimalSep:   ".",
			ThousandsSep: ",",
			Symbol:       "$",
			Code:         "USD",
			Position:     "before",
		},
	},
	"es-ES": {
		Short:           "%d/%m/%Y",
		Full:            "%d/%m/%Y %H:%M:%S",
		Literal:         "%A, %d de %B de %Y",
		LiteralWithTime: "%A, %d de %B de %Y, %H:%M:%S",
		Number: NumberFormat{
			DecimalSep:   ",",
			ThousandsSep: ".",
		},
		Currency: CurrencyFormat{
			DecimalSep:   ",",
			ThousandsSep: ".",
			Code:         "EUR",
			Position:     "after",
		},
		MonthNames: []string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		DayNames: []string{
			"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
		},
	},
}

// BuiltinFormats returns a copy of the bundles shipped with the package
func BuiltinFormats() map[string]FormatSpec {
	out := make(map[string]FormatSpec, len(builtinFormats))
	for locale, spec := range builtinFormats {
		out[locale] = spec.Clone()
	}
	return out
}
