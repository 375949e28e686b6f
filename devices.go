package jukeaudio

import (
	"context"
)

// ListDevices returns the devices known to the Juke controller.
func (c *Client) ListDevices(ctx context.Context) (List, error) {
	return getJSON[List](ctx, c, "ListDevices", "/devices/", "/devices/")
}

// GetDeviceConnection returns network connection details for a device.
func (c *Client) GetDeviceConnection(ctx context.Context, deviceID string) (Object, error) {
	return getJSON[Object](ctx, c, "GetDeviceConnection", "/devices/{id}/connection", "/devices/"+deviceID+"/connection")
}

// GetDeviceAttributes returns the static attributes of a device (model, serial, firmware).
func (c *Client) GetDeviceAttributes(ctx context.Context, deviceID string) (Object, error) {
	return getJSON[Object](ctx, c, "GetDeviceAttributes", "/devices/{id}/attributes", "/devices/"+deviceID+"/attributes")
}

// GetDeviceConfig returns the configuration of a device.
func (c *Client) GetDeviceConfig(ctx context.Context, deviceID string) (Object, error) {
	return getJSON[Object](ctx, c, "GetDeviceConfig", "/devices/{id}/config", "/devices/"+deviceID+"/config")
}

// GetDeviceMetrics returns the runtime metrics a device reports.
func (c *Client) GetDeviceMetrics(ctx context.Context, deviceID string) (Object, error) {
	return getJSON[Object](ctx, c, "GetDeviceMetrics", "/devices/{id}/metrics", "/devices/"+deviceID+"/metrics")
}
