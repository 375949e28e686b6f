package jukeaudio

import (
	"context"
	"net/http"
	"strings"
)

// IsJukeCompatible reports whether an advertised API version belongs to the
// major version this library speaks ("v2.3" is compatible, "v2" is not).
func IsJukeCompatible(version string) bool {
	return strings.HasPrefix(version, APIVersion+".")
}

// CanConnect reports whether a compatible Juke device answers at host.
// It never returns an error: any failure yields false.
//
// Example:
//
//	if !jukeaudio.CanConnect(ctx, "192.168.1.20") {
//	    log.Fatal("no compatible Juke device found")
//	}
func CanConnect(ctx context.Context, host string, opts ...Option) bool {
	c, err := NewClient(host, "", "", opts...)
	if err != nil {
		return false
	}
	return c.CanConnect(ctx)
}

// CanConnect reports whether the client's device is reachable and advertises
// a compatible API version first. The request carries no credentials.
// Transport, decode and empty-version failures all yield false. The status
// code is not inspected; only the advertised versions matter.
func (c *Client) CanConnect(ctx context.Context) bool {
	info, err := c.apiInfo(ctx, "CanConnect", true)
	if err != nil || len(info.Versions) == 0 {
		return false
	}
	return IsJukeCompatible(info.Versions[0])
}

// APIVersions returns every API version the device advertises at its
// unauthenticated root. Unlike CanConnect, failures are returned.
func (c *Client) APIVersions(ctx context.Context) ([]string, error) {
	info, err := c.apiInfo(ctx, "APIVersions", false)
	if err != nil {
		return nil, err
	}
	return info.Versions, nil
}

func (c *Client) apiInfo(ctx context.Context, op string, anyStatus bool) (APIInfo, error) {
	var info APIInfo
	cl := call{
		op:              op,
		method:          http.MethodGet,
		route:           "/",
		path:            "/",
		unauthenticated: true,
		anyStatus:       anyStatus,
	}

	data, err := c.do(ctx, cl)
	if err != nil {
		return info, err
	}
	if err := decode(op, data, &info); err != nil {
		return info, err
	}
	return info, nil
}
