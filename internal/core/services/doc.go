// Package services implements the driving ports over the domain model.
// Services orchestrate domain logic and driven-port infrastructure; they
// contain no transport or presentation code.
package services
