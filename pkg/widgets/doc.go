// Package widgets holds the state of the small interactive components shown
// next to the signup form on the playground page. Each component owns its
// own value; nothing is shared between them.
package widgets
