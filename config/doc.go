// Package config builds loggers from a declarative YAML description.
//
// A minimal file:
//
//	loggers:
//	  - name: root
//	    level: info
//	    pattern: "%d{%Y-%m-%d %H:%M:%S} [%p] %m%n"
//	    appenders:
//	      - type: stdout
//	      - type: file
//	        path: app.log
//	        pattern: "[%p] %c %m%n"
//
// Appenders inherit the logger's pattern unless they override it.
// Build is forgiving about patterns (a pattern that compiles with the
// error flag set degrades to the default pattern); Validate is the
// strict pass used by tooling.
package config
