package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the span in ctx onto err.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span := SpanFromContext(ctx)
	if span == "" {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
