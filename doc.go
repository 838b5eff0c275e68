// Package aotjson converts a closed set of Go types to and from JSON using
// converters generated ahead of time by cmd/aotjsongen.
//
// Generated converters register themselves from init, so application code
// only calls the generic entry points:
//
//	loc, err := aotjson.Unmarshal[model.Location](data)
//	data, err := aotjson.Marshal(&loc)
//
// Marshal and Unmarshal find the converter in the registry on each call. A
// Codec resolves it once:
//
//	var locations = aotjson.MustCodec[model.Location]()
//	loc, err := locations.Unmarshal(data)
//
// Decoding reads straight from the input bytes through a cursor; encoding
// writes into a pooled buffer that is cleared before it is reused.
package aotjson
