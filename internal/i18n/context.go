package i18n

import "context"

type contextKey string

const localeKey contextKey = "locale"

func NewContext(ctx context.Context, l Locale) context.Context {
	return context.WithValue(ctx, localeKey, l)
}

func FromContext(ctx context.Context) Locale {
	l, ok := ctx.Value(localeKey).(Locale)
	if !ok || l == "" {
		return Default
	}

	return l
}
