package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Aswin-K5/nutriview/pkg/model"
)

// Investigator-only endpoints. Access control is the backend's; the client
// merely keeps these behind investigator routes.

// PopulationStats fetches the analytics dashboard numbers.
func (c *Client) PopulationStats(ctx context.Context) (*model.PopulationStats, error) {
	var out model.PopulationStats
	if err := c.getJSON(ctx, "/research/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EnrolledPatients lists every patient in the study with summary markers.
func (c *Client) EnrolledPatients(ctx context.Context) ([]model.EnrolledPatient, error) {
	var out []model.EnrolledPatient
	if err := c.getJSON(ctx, "/research/patients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PatientSummary fetches one patient's clinical summary. The payload shape
// varies with available data, so it stays raw for the rendering layer.
func (c *Client) PatientSummary(ctx context.Context, userID int64) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.getJSON(ctx, fmt.Sprintf("/research/patients/%d/summary", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PatientRecalls fetches one patient's dietary recalls with food items.
func (c *Client) PatientRecalls(ctx context.Context, userID int64) ([]model.DietaryRecord, error) {
	var out []model.DietaryRecord
	if err := c.getJSON(ctx, fmt.Sprintf("/research/patients/%d/recalls", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PatientPlans fetches one patient's diet plans.
func (c *Client) PatientPlans(ctx context.Context, userID int64) ([]model.DietPlan, error) {
	var out []model.DietPlan
	if err := c.getJSON(ctx, fmt.Sprintf("/research/patients/%d/plans", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExportPatientsCSV downloads the SPSS/R-compatible patient export.
func (c *Client) ExportPatientsCSV(ctx context.Context) ([]byte, error) {
	return c.getBytes(ctx, "/research/export/patients", nil)
}

// ExportDietaryTimeseriesCSV downloads the dietary time-series export.
func (c *Client) ExportDietaryTimeseriesCSV(ctx context.Context) ([]byte, error) {
	return c.getBytes(ctx, "/research/export/dietary-timeseries", nil)
}

// ModelPerformance reports the analysis engine's status.
func (c *Client) ModelPerformance(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.getJSON(ctx, "/research/model-performance", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
