package model

// A server timestamp is not a distinct kind but a structural convention:
// a small map carrying a marker entry plus the pending write's local
// time. It stands in for a value the server will assign later; higher
// layers detect it on values read back via Get and give it special
// treatment during conflict resolution.

const (
	// TypeKey is the marker key identifying reserved map shapes.
	TypeKey = "__type__"

	// LocalWriteTimeKey holds the client's local estimate of the
	// pending server timestamp.
	LocalWriteTimeKey = "__local_write_time__"

	// ServerTimestampSentinel is the marker value under TypeKey.
	ServerTimestampSentinel = "server_timestamp"
)

// ServerTimestamp builds the sentinel shape for a pending server
// timestamp, carrying the given local write time.
func ServerTimestamp(localWriteTime Timestamp) Value {
	return Map(
		Pair(TypeKey, String(ServerTimestampSentinel)),
		Pair(LocalWriteTimeKey, Time(localWriteTime)),
	)
}

// IsServerTimestamp reports whether the value has the pending server
// timestamp shape. Maps with more than 3 entries are rejected outright:
// a real sentinel is the marker entry plus at most two companions, so
// the bound is a fast reject before scanning for the marker.
func IsServerTimestamp(v Value) bool {
	if !v.IsMap() {
		return false
	}
	if len(v.fields) > 3 {
		return false
	}
	for _, f := range v.fields {
		if f.Key == TypeKey {
			return f.Value.Kind() == KindString && f.Value.Text() == ServerTimestampSentinel
		}
	}
	return false
}

// LocalWriteTime extracts the local write time from a sentinel value.
// Callers must have confirmed the value with IsServerTimestamp first;
// a sentinel without a local write time indicates an internal
// consistency violation, so the function panics rather than returning
// a fabricated value.
func LocalWriteTime(v Value) Value {
	for _, f := range v.fields {
		if f.Key == LocalWriteTimeKey {
			return f.Value
		}
	}
	panic("model: local write time not found in server timestamp sentinel")
}
