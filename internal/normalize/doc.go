// Package normalize turns raw survey CSV rows into canonical records.
//
// Source files are the ANP weekly price surveys: ';' delimited, comma
// decimal separator, Portuguese column headers, ISO-8859-1 encoded. The
// normalizer translates headers via a static table, parses dates and
// prices into typed fields, and drops rows that cannot identify an
// observation (missing seller, date, or product).
package normalize
