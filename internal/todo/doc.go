// Package todo defines tasks, projects, and the task collection.
//
// A collection on disk looks like:
//
//	[
//	  {
//	    "name": "work",
//	    "tasks": [
//	      {
//	        "description": "fix bug",
//	        "priority": "Urgent",
//	        "deadline": "2024-01-05T17:00:00+01:00"
//	      },
//	      {
//	        "description": "write report",
//	        "priority": null,
//	        "deadline": null
//	      }
//	    ]
//	  }
//	]
//
// # Ordering
//
// Tasks sort by effective priority (urgent first, a missing priority counts
// as normal), then by description. Deadlines never change the static order.
// Projects sort by name. Every mutating method on Project and Collection
// leaves the value sorted, and Collection never keeps an empty project.
//
// # Selection
//
// Selector decides whether a task is shown by the selective listing.
// Urgent and high tasks always are. Normal, low and note tasks are shown
// with a base probability raised by deadline urgency, so the same task can
// appear on one invocation and not the next. The random source and clock are
// fields so callers can make selection deterministic.
//
// # Indices
//
// Tasks are addressed by position in their project's sorted task slice.
// Any insert, removal or edit may change those positions, so an index is only
// meaningful for the listing that produced it.
package todo
