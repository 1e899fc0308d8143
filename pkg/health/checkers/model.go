package checkers

import (
	"context"
	"fmt"

	"github.com/careerfit/screening/pkg/model"
)

// ModelChecker reports readiness of the loaded classification artifacts.
type ModelChecker struct {
	bundle *model.Bundle
}

func NewModelChecker(bundle *model.Bundle) *ModelChecker {
	return &ModelChecker{bundle: bundle}
}

func (c *ModelChecker) Name() string { return "model" }

func (c *ModelChecker) Check(ctx context.Context) error {
	if c.bundle == nil {
		return fmt.Errorf("model artifacts not loaded")
	}
	return nil
}
