// Package io writes resolution results in their two output formats.
//
// # Text
//
// [WriteText] produces the human-readable listing:
//
//	Direct dependencies of org.example:app:1.0.0
//
//	 1. org.springframework:spring-core:5.3.0 [compile]
//	 2. junit:junit:4.13.2 [test]
//
//	Total: 2
//
// A result without dependencies prints "No dependencies found" under the
// header and no total.
//
// # JSON
//
// [WriteJSON] produces a single object:
//
//	{
//	  "package": "org.example:app",
//	  "version": "1.0.0",
//	  "url": "https://repo1.maven.org/maven2/org/example/app/1.0.0/app-1.0.0.pom",
//	  "count": 1,
//	  "dependencies": [
//	    {"groupId": "junit", "artifactId": "junit", "version": "4.13.2", "scope": "test"}
//	  ]
//	}
//
// "dependencies" is always an array, never null. Entries keep declaration order.
//
// [Export] writes either format to a file path.
package io
