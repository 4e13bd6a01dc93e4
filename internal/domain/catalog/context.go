package catalog

import "context"

type localeKey struct{}

// WithLocale stores the locale used to render labels for this request.
func WithLocale(ctx context.Context, locale Locale) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// LocaleFrom returns the request locale or DefaultLocale.
func LocaleFrom(ctx context.Context) Locale {
	if locale, ok := ctx.Value(localeKey{}).(Locale); ok {
		return locale
	}
	return DefaultLocale
}
