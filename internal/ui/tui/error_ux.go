package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/aalvaropc/slope/internal/domain"
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindInvalidInput:
			if strings.Contains(err.Error(), "unsupported image format") {
				return "Unsupported image format (use .png, .svg or .pdf)"
			}
			if strings.Contains(oe.Op, "export_chart") {
				return "Chart path is empty"
			}
			return "Invalid input"

		case domain.KindNotFound:
			return "Not found"

		case domain.KindInvalidConfig:
			return "Invalid config"

		case domain.KindExecution:
			if strings.HasPrefix(oe.Op, "plotpng.") {
				return "Could not write chart (see logs)"
			}
			return "Unexpected error (see logs)"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "Chart export timed out"
	}

	return "Unexpected error (see logs)"
}
