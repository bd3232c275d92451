// Package sanitizer turns user supplied titles into plain text.
//
// Titles often arrive from rich text editors with markup and entities:
//
//	sanitizer.Title("<p>Москва&nbsp;&amp;\n<b>Петербург</b></p>")
//	// "Москва & Петербург"
//
// [StripHTML] uses bluemonday's strict policy, so script and style bodies
// disappear along with the tags.
package sanitizer
