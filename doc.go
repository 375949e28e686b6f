// Package jukeaudio provides a Go client library for the Juke Audio
// multi-zone amplifier REST API.
//
// The library covers the device's local v2 API: device discovery and
// details, zone configuration with volume and input control, and input
// configuration. Responses are returned as decoded JSON (Object, List)
// without imposing a schema; Object.String, Object.Int and Object.List read
// fields by key path.
//
// # Connecting
//
// Check that a compatible device answers before creating a client:
//
//	if !jukeaudio.CanConnect(ctx, "192.168.1.20") {
//	    log.Fatal("no compatible Juke device at 192.168.1.20")
//	}
//
// Create a client with the device's credentials:
//
//	client, err := jukeaudio.NewClient("192.168.1.20", "admin", "secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Every authenticated request carries "Authorization: Bearer <token>" where
// the token is the base64 encoding of "username:password" (see AuthToken).
//
// # Basic Usage
//
// List zones and read their configuration:
//
//	zones, err := client.ListZones(ctx)
//	for _, zoneID := range zones.Strings() {
//	    cfg, err := client.GetZoneConfig(ctx, zoneID)
//	    name, _ := cfg.String("name")
//	    fmt.Printf("Zone %s: %s\n", zoneID, name)
//	}
//
// Control a zone:
//
//	_, err = client.SetZoneVolume(ctx, zoneID, 35)
//	_, err = client.SetZoneInput(ctx, zoneID, "aux1")
//	_, err = client.SetZoneInput(ctx, zoneID, "") // clear the input
//
// # Error Handling
//
// Every call except CanConnect returns one of two error kinds:
//
//	cfg, err := client.GetZoneConfig(ctx, zoneID)
//	if err != nil {
//	    if jukeaudio.IsAuthentication(err) {
//	        // Device answered with a non-200 status: bad credentials,
//	        // unknown id or a rejected request.
//	    } else if jukeaudio.IsUnexpected(err) {
//	        // Device unreachable, connection dropped, timeout or bad body.
//	    }
//	}
//
// Nothing is retried. Deadlines and cancellation come from the context
// passed to each call; the library sets no timeout unless WithTimeout is used.
//
// # Observability
//
// WithLogger enables slog request logging, WithMetrics records prometheus
// request counters and latencies, and WithTracerProvider creates an
// OpenTelemetry span per call.
package jukeaudio
