package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Aswin-K5/nutriview/pkg/model"
)

// SearchFoods queries the USDA food database. Works unauthenticated; the
// query must be at least two characters, limit is capped server-side at 50.
func (c *Client) SearchFoods(ctx context.Context, query string, limit int) ([]model.Food, error) {
	q := url.Values{}
	q.Set("query", query)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out []model.Food
	if err := c.getJSON(ctx, "/dietary/foods/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FoodCategories lists the WWEIA category names.
func (c *Client) FoodCategories(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.getJSON(ctx, "/dietary/foods/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRecall submits a 24-hour dietary recall and returns it scored.
func (c *Client) CreateRecall(ctx context.Context, in *model.RecallCreate) (*model.DietaryRecord, error) {
	var out model.DietaryRecord
	if err := c.postJSON(ctx, "/dietary/recall", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Recalls lists the patient's dietary recalls.
func (c *Client) Recalls(ctx context.Context) ([]model.DietaryRecord, error) {
	var out []model.DietaryRecord
	if err := c.getJSON(ctx, "/dietary/recall", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Recall fetches one recall by id.
func (c *Client) Recall(ctx context.Context, id int64) (*model.DietaryRecord, error) {
	var out model.DietaryRecord
	if err := c.getJSON(ctx, fmt.Sprintf("/dietary/recall/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRecall removes a recall.
func (c *Client) DeleteRecall(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/dietary/recall/%d", id))
}

// SubmitFFQ submits a food-frequency questionnaire.
func (c *Client) SubmitFFQ(ctx context.Context, in *model.FFQ) (*model.FFQ, error) {
	var out model.FFQ
	if err := c.postJSON(ctx, "/dietary/ffq", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FFQs lists the patient's questionnaire submissions.
func (c *Client) FFQs(ctx context.Context) ([]model.FFQ, error) {
	var out []model.FFQ
	if err := c.getJSON(ctx, "/dietary/ffq", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
