package api

import (
	"context"

	"github.com/Aswin-K5/nutriview/pkg/model"
)

// CreateProfile submits the patient's anthropometric and lab values; the
// backend returns the profile with its computed fields filled in.
func (c *Client) CreateProfile(ctx context.Context, p *model.PatientProfile) (*model.PatientProfile, error) {
	var out model.PatientProfile
	if err := c.postJSON(ctx, "/patients/profile", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches the current patient's profile.
func (c *Client) Profile(ctx context.Context) (*model.PatientProfile, error) {
	var out model.PatientProfile
	if err := c.getJSON(ctx, "/patients/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile replaces profile fields and returns the re-scored profile.
func (c *Client) UpdateProfile(ctx context.Context, p *model.PatientProfile) (*model.PatientProfile, error) {
	var out model.PatientProfile
	if err := c.putJSON(ctx, "/patients/profile", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfileSummary fetches the server-computed anthropometric summary shown
// on the dashboard.
func (c *Client) ProfileSummary(ctx context.Context) (*model.AnthropometricSummary, error) {
	var out model.AnthropometricSummary
	if err := c.getJSON(ctx, "/patients/profile/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
