package wizard

import (
	"context"

	"github.com/charmbracelet/huh"
)

// PromptSecret asks for a single value with masked echo.
func PromptSecret(ctx context.Context, title, description string) (string, error) {
	var value string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				EchoMode(huh.EchoModePassword).
				Value(&value).
				Validate(validateRequired),
		),
	).RunWithContext(ctx)
	if err != nil {
		return "", err
	}
	return value, nil
}
