// Package brdoc provides cleaning, formatting, validation, and test-data
// generation for Brazilian personal and address documents: CPF, CNPJ, PIS,
// CEP, RG, and phone numbers.
//
// Every document type exposes the same four-operation contract:
//
//   - CleanX strips every non-digit character and is idempotent.
//   - FormatX cleans the input, truncates excess digits, and applies the
//     document's literal mask progressively, so partial input produces a
//     partial mask without trailing separators. Input containing no digits at
//     all is returned unchanged to avoid data loss. FormatX is idempotent on
//     its own output.
//   - IsValidX cleans the input and checks length, repeated-digit runs, and
//     the document's check-digit arithmetic where one exists. It never panics;
//     any malformed input yields false.
//   - GenerateX synthesizes a random, checksum-correct document and returns it
//     formatted. Intended for tests and fixtures only — generated values are
//     arithmetically valid but not registered with any issuer.
//
// The formatted string is the canonical representation for storage and
// display; the cleaned string is derived from it for validation. MaskX helpers
// produce log-safe renderings that hide all but the last four digits.
//
// # Check digits
//
// CPF, CNPJ, and PIS carry modulo-11 check digits computed from weighted sums
// of the preceding digits. CEP and RG have no checksum: CEP is exactly eight
// digits, RG is eight or nine (issuing state rules vary and are not modeled
// here). Phone numbers are validated structurally: a two-digit area code in
// [11,99] and, for eleven-digit numbers, the leading 9 mobile marker.
//
// All functions are pure and goroutine-safe; the package holds no state.
package brdoc
