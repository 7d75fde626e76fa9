// Package presentation turns an analysis into what the user sees: the text
// report, the backend-neutral chart description and its terminal rendering.
package presentation
