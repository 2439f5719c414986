package rpc

import (
	"context"

	"github.com/CADMonkey21/pivx-rpc-go/pivxjson"
)

// GetBudgetInfo returns budget proposals, all of them when name is empty.
func (c *Client) GetBudgetInfo(ctx context.Context, name string) ([]pivxjson.BudgetInfo, error) {
	var budgets []pivxjson.BudgetInfo
	if err := c.Call(ctx, "getbudgetinfo", &budgets, optString(name)); err != nil {
		return nil, err
	}
	return budgets, nil
}
