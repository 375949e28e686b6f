package jukeaudio

import (
	"context"
)

// JukeClient defines the interface for Juke Audio API operations.
// Client implements this interface, enabling mocking for tests.
type JukeClient interface {
	// ============================================================================
	// Connectivity
	// ============================================================================

	CanConnect(ctx context.Context) bool
	APIVersions(ctx context.Context) ([]string, error)

	// ============================================================================
	// Device Operations
	// ============================================================================

	ListDevices(ctx context.Context) (List, error)
	GetDeviceConnection(ctx context.Context, deviceID string) (Object, error)
	GetDeviceAttributes(ctx context.Context, deviceID string) (Object, error)
	GetDeviceConfig(ctx context.Context, deviceID string) (Object, error)
	GetDeviceMetrics(ctx context.Context, deviceID string) (Object, error)

	// ============================================================================
	// Zone Operations
	// ============================================================================

	ListZones(ctx context.Context) (List, error)
	GetZoneConfig(ctx context.Context, zoneID string) (Object, error)
	SetZoneVolume(ctx context.Context, zoneID string, volume int) (string, error)
	SetZoneInput(ctx context.Context, zoneID, input string) (string, error)

	// ============================================================================
	// Input Operations
	// ============================================================================

	ListInputs(ctx context.Context) (List, error)
	GetInputConfig(ctx context.Context, inputID string) (Object, error)
	GetAvailableInputTypes(ctx context.Context, inputID string) (List, error)
}

// Ensure Client implements JukeClient.
var _ JukeClient = (*Client)(nil)
