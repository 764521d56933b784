// Package todo holds the task list, its rendering, and its storage file.
//
// The storage file (tasks.json) is a single JSON object:
//
//	{
//	  "tasks": [
//	    {
//	      "name": "Buy milk",
//	      "description": "from the corner store",
//	      "time_created": "2024-03-05T09:07:00.123456789+01:00"
//	    }
//	  ]
//	}
//
// # Indices
//
// Tasks are addressed by their 0-based position in the list. Removing a
// task shifts every later task down by one, so an index is only
// meaningful against the list it was read from.
//
// # Validation
//
// Load checks the document against the embedded JSON Schema
// (tasks.schema.json) before decoding it. A file that is not JSON, or
// that does not match the schema, yields a *CorruptError.
//
// # File Format
//
// When writing the storage file, the package uses:
//   - 2-space indentation
//   - Trailing newline
//   - Field order name, description, time_created
package todo
