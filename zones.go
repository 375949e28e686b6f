package jukeaudio

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

const (
	formContentType = "application/x-www-form-urlencoded"
	textContentType = "text/plain; charset=utf-8"
)

// ListZones returns the ids of all zones.
func (c *Client) ListZones(ctx context.Context) (List, error) {
	return getJSON[List](ctx, c, "ListZones", "/zones", "/zones")
}

// GetZoneConfig returns the configuration of a zone, including its volume and input.
func (c *Client) GetZoneConfig(ctx context.Context, zoneID string) (Object, error) {
	return getJSON[Object](ctx, c, "GetZoneConfig", "/zones/{id}", "/zones/"+zoneID)
}

// SetZoneVolume sets the volume of a zone and returns the device's
// acknowledgement text. The value is sent as is; the device enforces its range.
func (c *Client) SetZoneVolume(ctx context.Context, zoneID string, volume int) (string, error) {
	form := url.Values{}
	form.Set("volume", strconv.Itoa(volume))
	return c.putText(ctx, "SetZoneVolume", "/zones/{id}/volume", "/zones/"+zoneID+"/volume",
		formContentType, []byte(form.Encode()))
}

// SetZoneInput routes an input to a zone and returns the device's
// acknowledgement text. An empty input clears the zone's input.
//
// The body is a JSON array: [] when input is empty, ["<input>"] otherwise.
func (c *Client) SetZoneInput(ctx context.Context, zoneID, input string) (string, error) {
	body, err := zoneInputBody(input)
	if err != nil {
		return "", &UnexpectedError{Op: "SetZoneInput", Err: err}
	}
	return c.putText(ctx, "SetZoneInput", "/zones/{id}/input", "/zones/"+zoneID+"/input",
		textContentType, body)
}

func zoneInputBody(input string) ([]byte, error) {
	inputs := []string{}
	if input != "" {
		inputs = append(inputs, input)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(inputs); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
