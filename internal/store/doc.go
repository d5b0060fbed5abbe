// Package store implements durable CRUD over the task collection.
//
// # Persistence Model
//
// The whole collection lives in one structured file (JSON by default,
// YAML selectable). Every operation loads the full collection into
// memory; mutations rewrite the file in full via a temp-file rename, so
// either both the in-memory change and the persisted write take effect
// or neither does.
//
// # Id Assignment
//
// Ids come from an explicit next_id counter persisted with the
// collection. The counter only grows: ids are distinct, strictly
// increasing in creation order, and a deleted id is never handed out
// again, even after a restart or after clearing all tasks.
//
// # File Format
//
// The default JSON layout:
//
//	{
//	  "version": 1,
//	  "next_id": 3,
//	  "tasks": [
//	    {"id": 1, "description": "Buy groceries", "done": false},
//	    {"id": 2, "description": "Clean house", "done": true}
//	  ]
//	}
//
// # Concurrency
//
// Mutations take an exclusive lock on a sidecar .lock file for the whole
// load-mutate-persist window, so two invocations racing on the same
// store file cannot lose updates.
package store
