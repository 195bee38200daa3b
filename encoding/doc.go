// Package encoding decodes the character data stored in message bundles.
//
// Two encodings exist, selected once by the message header:
//   - UTF-8: text bytes are validated strictly; malformed sequences are an error.
//   - UTF-16: text bytes are assembled pairwise into code units using the byte
//     order of the file, then combined into runes. Odd byte counts and unpaired
//     surrogates are errors.
//
// Label names are always UTF-8 regardless of the header encoding.
//
// Decoded texts carry their terminator in the file; TrimNUL removes every
// trailing NUL character while leaving embedded ones in place.
package encoding
