package jukeaudio

import (
	"math"
	"unicode/utf8"
)

// Object is a decoded JSON object returned by the device. The library does
// not impose a schema; read fields with String, Int and List, passing the
// key path for nested values:
//
//	cfg, _ := client.GetZoneConfig(ctx, zoneID)
//	name, _ := cfg.String("name")
//	volume, ok := cfg.Int("volume")
type Object map[string]any

// List is a decoded JSON array returned by the device.
type List []any

// APIInfo is the body of the unauthenticated API root.
type APIInfo struct {
	Versions []string `json:"versions"`
}

// String returns the string at the key path.
func (o Object) String(keys ...string) (string, bool) {
	s, ok := o.lookup(keys).(string)
	return s, ok
}

// Int returns the integral number at the key path. Fractional values and
// numbers outside the int range are reported as missing.
func (o Object) Int(keys ...string) (int, bool) {
	v, ok := o.lookup(keys).(float64)
	if !ok || v != math.Trunc(v) || v >= float64(math.MaxInt) || v < float64(math.MinInt) {
		return 0, false
	}
	return int(v), true
}

// List returns the array at the key path. A JSON null is not a list.
func (o Object) List(keys ...string) (List, bool) {
	switch v := o.lookup(keys).(type) {
	case []any:
		return List(v), true
	case List:
		return v, true
	default:
		return nil, false
	}
}

// lookup follows keys through nested objects and returns nil when any
// step is missing or not an object.
func (o Object) lookup(keys []string) any {
	var current any = map[string]any(o)
	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		if current, ok = m[key]; !ok {
			return nil
		}
	}
	return current
}

// Strings returns the string elements of the list in order, skipping any
// other values. Device, zone and input listings are lists of ids.
func (l List) Strings() []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l))
	for _, v := range l {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

const previewLimit = 200

// truncatePreview returns the body for error messages, cut on a rune
// boundary at previewLimit bytes.
func truncatePreview(data []byte) string {
	if len(data) <= previewLimit {
		return string(data)
	}
	n := previewLimit
	for n > 0 && !utf8.RuneStart(data[n]) {
		n--
	}
	return string(data[:n]) + "..."
}
