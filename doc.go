/*
Package sheetstream normalizes tabular data from Google Sheets and from XLSX
documents stored on Google Drive into a uniform stream-of-records model with
an inferred JSON schema, emitted over a metadata/record/state line protocol.

sheetstream is a command line connector: a pipeline runner invokes it with a
configuration file and consumes the JSON lines it writes to stdout.

sheetstream supports the following commands:

  - spec, to emit the connector specification document
  - check, to verify access to the configured spreadsheet
  - discover, to emit the catalog of streams with their inferred schemas
  - read, to emit the records of the configured streams and a closing state message
  - version, to display the application version
*/
package sheetstream
