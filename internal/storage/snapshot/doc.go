// Package snapshot reads and writes the minidb snapshot file.
//
// A snapshot is one human-readable JSON document holding the whole store:
//
//	{
//	  "orders": [],
//	  "users": [
//	    {
//	      "name": "John",
//	      "age": "25"
//	    }
//	  ]
//	}
//
// Outer keys are collection names (written in lexical order), values are
// record arrays in insertion order, records are objects of string values.
//
// Writes replace the file atomically: the new content goes to a temporary
// file next to the target, is fsynced, then renamed over it.
package snapshot
