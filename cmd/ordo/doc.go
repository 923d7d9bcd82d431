// Command ordo archives movies and subtitles from configured source trees
// into a tagged destination library. It scans the sources, groups subtitles
// with their movies by normalized title, and copies each group into
// destination/<tag>/<title>/.
package main
