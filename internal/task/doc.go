// Package task defines the domain records exchanged with the task API.
//
// The wire shape of a task is:
//
//	{
//	  "id": "a1b2c3",
//	  "title": "Task title",
//	  "description": "Optional description",
//	  "dueDate": "2024-01-01T00:00:00Z",
//	  "status": false
//	}
//
// # Invariants
//
//   - "id" is assigned by the server and never fabricated client-side.
//   - "title" must be non-empty after whitespace trimming before a create
//     or update is issued.
//   - "dueDate" is carried as the ISO-8601 string so it round-trips
//     byte-for-byte with the API.
//   - "status" false means pending, true means completed.
//
// A Draft is the screen-local staging copy of a task under edit. Its fields
// are pointers so an unset field is distinguishable from a zero value and a
// partial update carries only the fields being changed.
//
// # Validation
//
// Collection payloads can be validated against an embedded JSON Schema
// (draft 2020-12). Schema errors are reported with dot-notation paths.
package task
