package api

import (
	"context"
	"fmt"

	"github.com/Aswin-K5/nutriview/pkg/model"
)

// GeneratePlan asks the backend to produce a diet plan from the patient's
// latest assessments.
func (c *Client) GeneratePlan(ctx context.Context, req *model.PlanRequest) (*model.DietPlan, error) {
	var out model.DietPlan
	if err := c.postJSON(ctx, "/diet-plan/generate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ComparePlans fetches the rule-based vs ML side-by-side comparison.
func (c *Client) ComparePlans(ctx context.Context) (*model.ModelComparison, error) {
	var out model.ModelComparison
	if err := c.getJSON(ctx, "/diet-plan/compare", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlanHistory lists previously generated plans, newest first.
func (c *Client) PlanHistory(ctx context.Context) ([]model.DietPlan, error) {
	var out []model.DietPlan
	if err := c.getJSON(ctx, "/diet-plan/history", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Plan fetches one plan by id.
func (c *Client) Plan(ctx context.Context, id int64) (*model.DietPlan, error) {
	var out model.DietPlan
	if err := c.getJSON(ctx, fmt.Sprintf("/diet-plan/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateGoal sets a personal health goal.
func (c *Client) CreateGoal(ctx context.Context, goalType string, targetValue float64, deadline string) (*model.Goal, error) {
	in := map[string]any{
		"goal_type":    goalType,
		"target_value": targetValue,
	}
	if deadline != "" {
		in["deadline"] = deadline
	}
	var out model.Goal
	if err := c.postJSON(ctx, "/goals", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Goals lists the patient's health goals.
func (c *Client) Goals(ctx context.Context) ([]model.Goal, error) {
	var out []model.Goal
	if err := c.getJSON(ctx, "/goals", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteGoal removes a goal.
func (c *Client) DeleteGoal(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/goals/%d", id))
}
