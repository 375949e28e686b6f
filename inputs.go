package jukeaudio

import (
	"context"
	"errors"
)

var errNoAvailableTypes = errors.New("response has no available_types list")

// ListInputs returns the ids of all inputs.
func (c *Client) ListInputs(ctx context.Context) (List, error) {
	return getJSON[List](ctx, c, "ListInputs", "/inputs", "/inputs")
}

// GetInputConfig returns the configuration of an input.
func (c *Client) GetInputConfig(ctx context.Context, inputID string) (Object, error) {
	return getJSON[Object](ctx, c, "GetInputConfig", "/inputs/{id}", "/inputs/"+inputID)
}

// GetAvailableInputTypes returns the input types an input can be switched
// to, e.g. ["bluetooth", "optical"]. The list is unwrapped from the
// response's available_types field; a reply without that list is an
// *UnexpectedError.
func (c *Client) GetAvailableInputTypes(ctx context.Context, inputID string) (List, error) {
	resp, err := getJSON[Object](ctx, c, "GetAvailableInputTypes",
		"/inputs/{id}/available-types", "/inputs/"+inputID+"/available-types")
	if err != nil {
		return nil, err
	}
	types, ok := resp.List("available_types")
	if !ok {
		return nil, &UnexpectedError{Op: "GetAvailableInputTypes", Err: errNoAvailableTypes}
	}
	return types, nil
}
