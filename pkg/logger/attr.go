package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error", or returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Key records a storage key. Keys are logged, values never are.
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

func Backend(name string) slog.Attr {
	return slog.String("backend", name)
}

// Field records the name of a form field that failed validation.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Attempts records how many consecutive failures were counted.
func Attempts(n int) slog.Attr {
	return slog.Int("attempts", n)
}

// UserID records the user identifier under the key "user_id".
// If id is nil, it returns an empty Attr.
func UserID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_id", id)
}

func Role(role string) slog.Attr {
	return slog.String("role", role)
}

func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
