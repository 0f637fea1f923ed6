// Package statements turns free-form natural-language input into typed
// mutations against a personal list of time-stamped statements (tasks,
// goals, reminders, logged observations).
//
// The root package holds the domain model and the deterministic engines:
// Apply reconciles a classifier-emitted action batch into a collection, and
// FilterByDate/SortItems derive display views. The classify package builds
// the classification prompt and calls a completion provider; the providers
// packages implement the provider contract; dates resolves civil calendar
// dates in explicit timezones.
//
// The classifier's output is treated as untrusted structured data: the
// engines enforce every structural rule themselves, and malformed or
// unresolvable actions degrade to per-action no-ops rather than errors.
package statements
