package application

import (
	"context"
	"log/slog"
)

// mutate runs action, then reloads the page and raises the success
// notification. On failure the error message is notified, nothing is
// reloaded and the error is returned unchanged.
func mutate[T any, S any](ctx context.Context, app *AppContext, success string, reload func(context.Context) S, action func(context.Context) (T, error)) (T, error) {
	result, err := action(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Page action failed", "error", err)
		app.failure(ctx, err.Error())
		return result, err
	}

	reload(ctx)
	app.success(ctx, success)
	return result, nil
}
