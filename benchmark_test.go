package jukeaudio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// BenchmarkJSONUnmarshalZoneConfig benchmarks decoding a zone config response.
func BenchmarkJSONUnmarshalZoneConfig(b *testing.B) {
	zoneJSON := []byte(`{
		"name": "Living Room",
		"volume": 35,
		"input": ["aux1"],
		"eq": {"bass": 2, "treble": -1},
		"source_priority": ["aux1", "bt", "airplay"]
	}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var cfg Object
		if err := json.Unmarshal(zoneJSON, &cfg); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAuthToken benchmarks token computation, done once per request.
func BenchmarkAuthToken(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = AuthToken("admin", "secret")
	}
}

// BenchmarkZoneInputBody benchmarks encoding of the input PUT body.
func BenchmarkZoneInputBody(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := zoneInputBody("aux1"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkObjectIntNested benchmarks nested field access.
func BenchmarkObjectIntNested(b *testing.B) {
	obj := Object{
		"network": map[string]any{
			"wifi": map[string]any{"rssi": float64(-61)},
		},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = obj.Int("network", "wifi", "rssi")
	}
}

// BenchmarkClientRequest benchmarks a simple API request.
func BenchmarkClientRequest(b *testing.B) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`["z1","z2","z3"]`))
	}))
	defer server.Close()

	client, _ := NewClient(hostOf(server), "admin", "secret")
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := client.ListZones(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkClientRequestWithMetrics benchmarks a request through the metrics transport.
func BenchmarkClientRequestWithMetrics(b *testing.B) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`OK`))
	}))
	defer server.Close()

	metrics, _ := NewMetrics(nil)
	client, _ := NewClient(hostOf(server), "admin", "secret", WithMetrics(metrics))
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := client.SetZoneVolume(ctx, "z1", 30); err != nil {
			b.Fatal(err)
		}
	}
}
