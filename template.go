package localize

// TemplateHelpers exposes the render functions for go-template, bound to lc
func TemplateHelpers(lc LocaleContext) map[string]any {
	return map[string]any{
		"locale": func() string {
			return lc.Locale()
		},
		"format_date": func(value string) (string, error) {
			return RenderDate(lc, value)
		},
		"format_datetime": func(value string, seconds ...bool) (string, error) {
			withSeconds := true
			if len(seconds) > 0 {
				withSeconds = seconds[0]
			}
			return RenderDateTime(lc, value, withSeconds)
		},
		"format_literal": func(value string, withTime ...bool) (string, error) {
			opts := LiteralOptions{}
			if len(withTime) > 0 {
				opts.WithTime = withTime[0]
			}
			return RenderLiteral(lc, value, opts)
		},
		"format_literal_with": func(value, format string) (string, error) {
			return RenderLiteral(lc, value, LiteralOptions{Format: format})
		},
		"format_currency": func(value any) string {
			return RenderCurrency(lc, value)
		},
		"format_number": func(value any, precision ...int) string {
			var p *int
			if len(precision) > 0 {
				p = Precision(precision[0])
			}
			return RenderNumber(lc, value, p, false)
		},
		"format_number_grouped": func(value any, precision int) string {
			return RenderNumber(lc, value, Precision(precision), true)
		},
	}
}
