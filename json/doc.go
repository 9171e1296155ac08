// Package json decodes JSON documents into values juggle can classify and
// encodes cast results back to JSON.
//
// Decoding keeps the key order of JSON objects by producing [juggle.Map]
// values, and keeps integers apart from other numbers. Encoding goes through
// [sonic] with the standard-library compatible configuration.
package json
